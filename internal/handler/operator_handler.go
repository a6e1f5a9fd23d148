package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/permission"
	"github.com/benbol/backend/internal/repository"
	"github.com/benbol/backend/internal/service"
)

// OperatorHandler exposes operator account management (admin only; the
// service enforces the role).
type OperatorHandler struct {
	operatorService service.OperatorService
}

// NewOperatorHandler creates an OperatorHandler with the given service.
func NewOperatorHandler(operatorService service.OperatorService) *OperatorHandler {
	return &OperatorHandler{operatorService: operatorService}
}

func writeOperatorError(w http.ResponseWriter, err error) {
	var denied *permission.DeniedError
	switch {
	case errors.As(err, &denied):
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error":   "forbidden",
			"message": denied.Error(),
		})
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, "email_taken")
	case errors.Is(err, service.ErrLastAdmin):
		writeError(w, http.StatusConflict, "last_admin")
	default:
		writeError(w, http.StatusInternalServerError, "operator_failed")
	}
}

// List handles GET /api/admin/operators.
func (h *OperatorHandler) List(w http.ResponseWriter, r *http.Request) {
	ops, err := h.operatorService.ListOperators(r.Context(), requestRole(r))
	if err != nil {
		writeOperatorError(w, err)
		return
	}
	if ops == nil {
		ops = []*model.Operator{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"operators": ops})
}

// createOperatorRequest is the expected JSON body for POST /api/admin/operators.
type createOperatorRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Create handles POST /api/admin/operators.
func (h *OperatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password_too_short")
		return
	}
	if !model.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "invalid_role")
		return
	}

	op, err := h.operatorService.CreateOperator(r.Context(), requestRole(r), req.Email, req.Password, req.Role)
	if err != nil {
		writeOperatorError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, op)
}

// changeRoleRequest is the expected JSON body for PUT .../{id}/role.
type changeRoleRequest struct {
	Role model.Role `json:"role"`
}

// ChangeRole handles PUT /api/admin/operators/{id}/role.
func (h *OperatorHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !model.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "invalid_role")
		return
	}

	if err := h.operatorService.ChangeRole(r.Context(), requestRole(r), r.PathValue("id"), req.Role); err != nil {
		writeOperatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Delete handles DELETE /api/admin/operators/{id}.
func (h *OperatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.operatorService.DeleteOperator(r.Context(), requestRole(r), r.PathValue("id")); err != nil {
		writeOperatorError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
