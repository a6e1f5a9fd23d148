package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	operators repository.OperatorRepository
	sessions  *SessionService
}

// NewAuthService は AuthServiceImpl を生成する（DI: リポジトリとセッションサービスを注入）
func NewAuthService(operators repository.OperatorRepository, sessions *SessionService) AuthService {
	return &AuthServiceImpl{operators: operators, sessions: sessions}
}

// Login はメールアドレスとパスワードを検証しセッションを発行する
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.Operator, *model.Session, error) {
	op, err := s.operators.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Hash comparison runs anyway so unknown emails take as long
			// as wrong passwords.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$000000000000000000000u"), []byte(password))
			slog.Info("login rejected, unknown email", "email", email)
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		slog.Info("login rejected, wrong password", "operator_id", op.ID)
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.sessions.CreateSession(ctx, op.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	slog.Info("login", "operator_id", op.ID, "role", op.Role)
	return op, session, nil
}

// Logout はセッションを破棄する
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// ChangePassword は現在のパスワードを検証して差し替える
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, operatorID, current, next string) error {
	op, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.operators.UpdatePassword(ctx, operatorID, string(hash)); err != nil {
		return err
	}
	// 他の端末のセッションを無効化する（強制ログアウト）
	_ = s.sessions.DeleteAllSessions(ctx, operatorID)
	slog.Info("password changed", "operator_id", operatorID)
	return nil
}

func (s *AuthServiceImpl) Operator(ctx context.Context, operatorID string) (*model.Operator, error) {
	return s.operators.FindByID(ctx, operatorID)
}
