package service

import (
	"context"
	"errors"

	"github.com/benbol/backend/internal/model"
)

// ErrLastAdmin is returned when an operation would leave the system
// without any admin account.
var ErrLastAdmin = errors.New("cannot remove the last admin")

// OperatorService provides admin-only operator account management. Every
// method takes the acting operator's role and enforces the permission
// table before touching storage.
type OperatorService interface {
	ListOperators(ctx context.Context, actor model.Role) ([]*model.Operator, error)
	CreateOperator(ctx context.Context, actor model.Role, email, password string, role model.Role) (*model.Operator, error)
	ChangeRole(ctx context.Context, actor model.Role, id string, role model.Role) error
	DeleteOperator(ctx context.Context, actor model.Role, id string) error
}
