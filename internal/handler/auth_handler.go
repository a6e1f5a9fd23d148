package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benbol/backend/internal/service"
	"github.com/benbol/backend/pkg/auth"
)

// AuthHandler handles operator login, logout and account endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates an AuthHandler. secureCookies should be false
// only for plain-HTTP local development.
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// operatorResponse is the account shape returned to the dashboard.
type operatorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /api/auth/login. On success the session token is set
// as an HttpOnly cookie; it never appears in the response body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "credentials_required")
		return
	}

	op, session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	http.SetCookie(w, auth.SessionCookie(session.Token, h.secureCookies))
	writeJSON(w, http.StatusOK, operatorResponse{
		ID:    op.ID,
		Email: op.Email,
		Role:  string(op.Role),
	})
}

// Logout handles POST /api/auth/logout. Idempotent; an absent cookie is
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil {
		_ = h.authService.Logout(r.Context(), cookie.Value)
	}
	http.SetCookie(w, auth.ExpiredSessionCookie(h.secureCookies))
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Me handles GET /api/auth/me (authenticated).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := auth.OperatorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	op, err := h.authService.Operator(r.Context(), operatorID)
	if err != nil {
		// The session was valid but the account row is unreadable; report
		// what the context carries rather than failing the whole page.
		writeJSON(w, http.StatusOK, operatorResponse{
			ID:   operatorID,
			Role: auth.RoleFromContext(r.Context()),
		})
		return
	}
	writeJSON(w, http.StatusOK, operatorResponse{
		ID:    op.ID,
		Email: op.Email,
		Role:  string(op.Role),
	})
}

// passwordRequest is the expected JSON body for PUT /api/auth/password.
type passwordRequest struct {
	Current string `json:"current_password"`
	Next    string `json:"new_password"`
}

const minPasswordLength = 8

// ChangePassword handles PUT /api/auth/password (authenticated).
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := auth.OperatorIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if len(req.Next) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password_too_short")
		return
	}

	err := h.authService.ChangePassword(r.Context(), operatorID, req.Current, req.Next)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "change_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
