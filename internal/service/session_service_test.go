package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/pkg/auth"
)

func TestSessionService_CreateAndValidate(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{
		ID: "op-1", Email: "m@benbol.com", Role: model.RoleManager,
	})
	svc := NewSessionService(newMockSessionRepository(), ops)

	session, err := svc.CreateSession(context.Background(), "op-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a token")
	}

	id, role, err := svc.ValidateSession(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "op-1" || role != string(model.RoleManager) {
		t.Errorf("got id=%q role=%q", id, role)
	}
}

func TestSessionService_ValidateUnknownToken(t *testing.T) {
	ops := newMockOperatorRepository()
	svc := NewSessionService(newMockSessionRepository(), ops)

	if _, _, err := svc.ValidateSession(context.Background(), "no-such-token"); err == nil {
		t.Error("expected error for unknown token")
	}
}

func TestSessionService_ExpiredSessionIsRemoved(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{ID: "op-1", Role: model.RoleAdmin})
	repo := newMockSessionRepository()
	svc := NewSessionService(repo, ops)

	repo.sessions["stale"] = &model.Session{
		Token:      "stale",
		OperatorID: "op-1",
		CreatedAt:  time.Now().Add(-2 * auth.SessionDuration),
		ExpiresAt:  time.Now().Add(-auth.SessionDuration),
	}

	if _, _, err := svc.ValidateSession(context.Background(), "stale"); err == nil {
		t.Error("expected error for expired session")
	}
	if _, ok := repo.sessions["stale"]; ok {
		t.Error("expired session should be deleted on validation")
	}
}

// An unreadable operator row must not grant elevated access, and must not
// kill the session either.
func TestSessionService_RoleLookupFailureDefaultsToViewer(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{ID: "op-1", Role: model.RoleAdmin})
	ops.findByIDErr = errors.New("db read failed")
	repo := newMockSessionRepository()
	svc := NewSessionService(repo, ops)

	repo.sessions["tok"] = &model.Session{
		Token: "tok", OperatorID: "op-1",
		CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour),
	}

	id, role, err := svc.ValidateSession(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "op-1" {
		t.Errorf("id=%q", id)
	}
	if role != auth.ViewerRole {
		t.Errorf("role=%q, want viewer fallback", role)
	}
}

func TestSessionService_DeletedOperatorInvalidatesSession(t *testing.T) {
	ops := newMockOperatorRepository() // operator row gone
	repo := newMockSessionRepository()
	svc := NewSessionService(repo, ops)

	repo.sessions["tok"] = &model.Session{
		Token: "tok", OperatorID: "op-gone",
		CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour),
	}

	if _, _, err := svc.ValidateSession(context.Background(), "tok"); err == nil {
		t.Error("expected error when the operator no longer exists")
	}
	if _, ok := repo.sessions["tok"]; ok {
		t.Error("orphaned session should be deleted")
	}
}
