package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const (
	operatorIDKey contextKey = "operator_id"
	roleKey       contextKey = "role"
)

// OperatorIDFromContext は context からオペレーターIDを取得する
func OperatorIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(operatorIDKey).(string)
	return v, ok
}

// WithOperatorID は context にオペレーターIDをセットする
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, operatorIDKey, operatorID)
}

// SessionValidator validates an opaque session token and resolves the
// operator it belongs to.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (operatorID, role string, err error)
}

// RequireAuth は認証必須ミドルウェア。セッションを検証し、
// オペレーターIDとロールを context にセットする
func RequireAuth(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			operatorID, role, err := validator.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithOperatorID(r.Context(), operatorID)
			ctx = WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
