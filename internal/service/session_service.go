package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
	"github.com/benbol/backend/pkg/auth"
)

// SessionService manages DB-backed operator sessions.
// Implements auth.SessionValidator.
type SessionService struct {
	repo      repository.SessionRepository
	operators repository.OperatorRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository, operators repository.OperatorRepository) *SessionService {
	return &SessionService{repo: repo, operators: operators}
}

// CreateSession generates a new opaque token, stores it in DB, and returns the session.
func (s *SessionService) CreateSession(ctx context.Context, operatorID string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("session token generation failed", "error", err)
		return nil, err
	}
	now := time.Now()
	session := &model.Session{
		Token:      token,
		OperatorID: operatorID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(auth.SessionDuration),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		slog.Error("session insert failed", "error", err, "operator_id", operatorID)
		return nil, err
	}
	return session, nil
}

// ValidateSession validates a session token and resolves the operator's ID
// and role. When the role cannot be determined (operator row unreadable
// while the session itself is valid), the session stays usable but the
// role falls back to viewer. A deleted operator invalidates the session.
// Implements auth.SessionValidator.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (string, string, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return "", "", errors.New("invalid_session")
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.repo.DeleteByToken(ctx, token)
		return "", "", errors.New("session_expired")
	}

	op, err := s.operators.FindByID(ctx, session.OperatorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = s.repo.DeleteByToken(ctx, token)
			return "", "", errors.New("invalid_session")
		}
		slog.Warn("role lookup failed, defaulting to viewer", "error", err, "operator_id", session.OperatorID)
		return session.OperatorID, auth.ViewerRole, nil
	}
	return op.ID, string(op.Role), nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes all sessions for an operator (forced logout).
func (s *SessionService) DeleteAllSessions(ctx context.Context, operatorID string) error {
	return s.repo.DeleteByOperatorID(ctx, operatorID)
}
