package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/permission"
	"github.com/benbol/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// operatorServiceImpl is the production implementation of OperatorService.
type operatorServiceImpl struct {
	operators repository.OperatorRepository
	sessions  *SessionService
}

// NewOperatorService creates an OperatorService.
func NewOperatorService(operators repository.OperatorRepository, sessions *SessionService) OperatorService {
	return &operatorServiceImpl{operators: operators, sessions: sessions}
}

func (s *operatorServiceImpl) ListOperators(ctx context.Context, actor model.Role) ([]*model.Operator, error) {
	if err := permission.Check(actor, permission.OpManageOperators); err != nil {
		return nil, err
	}
	return s.operators.List(ctx)
}

func (s *operatorServiceImpl) CreateOperator(ctx context.Context, actor model.Role, email, password string, role model.Role) (*model.Operator, error) {
	if err := permission.Check(actor, permission.OpManageOperators); err != nil {
		return nil, err
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	op := &model.Operator{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.operators.Create(ctx, op); err != nil {
		return nil, err
	}
	slog.Info("operator created", "operator_id", op.ID, "role", op.Role)
	return op, nil
}

func (s *operatorServiceImpl) ChangeRole(ctx context.Context, actor model.Role, id string, role model.Role) error {
	if err := permission.Check(actor, permission.OpChangeRole); err != nil {
		return err
	}
	if !model.ValidRole(role) {
		return fmt.Errorf("invalid role %q", role)
	}
	if role != model.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, id); err != nil {
			return err
		}
	}
	if err := s.operators.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	slog.Info("operator role changed", "operator_id", id, "role", role)
	return nil
}

func (s *operatorServiceImpl) DeleteOperator(ctx context.Context, actor model.Role, id string) error {
	if err := permission.Check(actor, permission.OpManageOperators); err != nil {
		return err
	}
	if err := s.ensureAnotherAdmin(ctx, id); err != nil {
		return err
	}
	if err := s.operators.Delete(ctx, id); err != nil {
		return err
	}
	// 削除したアカウントのセッションを破棄する
	_ = s.sessions.DeleteAllSessions(ctx, id)
	slog.Info("operator deleted", "operator_id", id)
	return nil
}

// ensureAnotherAdmin fails with ErrLastAdmin when removing or demoting
// the operator with the given ID would leave no admin account.
func (s *operatorServiceImpl) ensureAnotherAdmin(ctx context.Context, id string) error {
	ops, err := s.operators.List(ctx)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if op.Role == model.RoleAdmin && op.ID != id {
			return nil
		}
	}
	return ErrLastAdmin
}
