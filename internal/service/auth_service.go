package service

import (
	"context"
	"errors"

	"github.com/benbol/backend/internal/model"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match an operator account. Deliberately indistinguishable between
// unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService は認証に関するビジネスロジックのインターフェース
type AuthService interface {
	// Login verifies the credentials and opens a new session.
	Login(ctx context.Context, email, password string) (*model.Operator, *model.Session, error)

	// Logout invalidates the session token.
	Logout(ctx context.Context, token string) error

	// ChangePassword verifies the current password and replaces it.
	ChangePassword(ctx context.Context, operatorID, current, next string) error

	// Operator loads the account behind an operator ID.
	Operator(ctx context.Context, operatorID string) (*model.Operator, error)
}
