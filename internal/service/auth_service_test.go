package service

import (
	"context"
	"errors"
	"testing"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ---------------------------------------------------------------------------
// mockOperatorRepository / mockSessionRepository — in-memory stubs
// ---------------------------------------------------------------------------

type mockOperatorRepository struct {
	operators   map[string]*model.Operator // keyed by ID
	findByIDErr error
	updatedRole map[string]model.Role
	updatedHash map[string]string
	deleted     []string
	createErr   error
	createdOps  []*model.Operator
}

func newMockOperatorRepository(ops ...*model.Operator) *mockOperatorRepository {
	m := &mockOperatorRepository{
		operators:   map[string]*model.Operator{},
		updatedRole: map[string]model.Role{},
		updatedHash: map[string]string{},
	}
	for _, op := range ops {
		m.operators[op.ID] = op
	}
	return m
}

func (m *mockOperatorRepository) FindByID(ctx context.Context, id string) (*model.Operator, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	op, ok := m.operators[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return op, nil
}

func (m *mockOperatorRepository) FindByEmail(ctx context.Context, email string) (*model.Operator, error) {
	for _, op := range m.operators {
		if op.Email == email {
			return op, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockOperatorRepository) Create(ctx context.Context, op *model.Operator) error {
	if m.createErr != nil {
		return m.createErr
	}
	op.ID = "op-new"
	m.operators[op.ID] = op
	m.createdOps = append(m.createdOps, op)
	return nil
}

func (m *mockOperatorRepository) List(ctx context.Context) ([]*model.Operator, error) {
	var out []*model.Operator
	for _, op := range m.operators {
		out = append(out, op)
	}
	return out, nil
}

func (m *mockOperatorRepository) UpdateRole(ctx context.Context, id string, role model.Role) error {
	if _, ok := m.operators[id]; !ok {
		return repository.ErrNotFound
	}
	m.updatedRole[id] = role
	m.operators[id].Role = role
	return nil
}

func (m *mockOperatorRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	if _, ok := m.operators[id]; !ok {
		return repository.ErrNotFound
	}
	m.updatedHash[id] = hash
	m.operators[id].PasswordHash = hash
	return nil
}

func (m *mockOperatorRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.operators[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.operators, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSessionRepository struct {
	sessions    map[string]*model.Session
	deletedByOp []string
	createErr   error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: map[string]*model.Session{}}
}

func (m *mockSessionRepository) Create(ctx context.Context, s *model.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[s.Token] = s
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionRepository) DeleteByOperatorID(ctx context.Context, operatorID string) error {
	m.deletedByOp = append(m.deletedByOp, operatorID)
	for token, s := range m.sessions {
		if s.OperatorID == operatorID {
			delete(m.sessions, token)
		}
	}
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{
		ID: "op-1", Email: "admin@benbol.com",
		PasswordHash: hashOf(t, "s3cret"), Role: model.RoleAdmin,
	})
	sessions := NewSessionService(newMockSessionRepository(), ops)
	svc := NewAuthService(ops, sessions)

	op, session, err := svc.Login(context.Background(), "admin@benbol.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.ID != "op-1" {
		t.Errorf("operator ID=%q", op.ID)
	}
	if session.Token == "" || session.OperatorID != "op-1" {
		t.Errorf("bad session: %+v", session)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{
		ID: "op-1", Email: "admin@benbol.com",
		PasswordHash: hashOf(t, "s3cret"), Role: model.RoleAdmin,
	})
	svc := NewAuthService(ops, NewSessionService(newMockSessionRepository(), ops))

	_, _, err := svc.Login(context.Background(), "admin@benbol.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ops := newMockOperatorRepository()
	svc := NewAuthService(ops, NewSessionService(newMockSessionRepository(), ops))

	_, _, err := svc.Login(context.Background(), "nobody@benbol.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ChangePassword tests
// ---------------------------------------------------------------------------

func TestAuthService_ChangePassword_InvalidatesOtherSessions(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{
		ID: "op-1", Email: "admin@benbol.com",
		PasswordHash: hashOf(t, "old"), Role: model.RoleAdmin,
	})
	sessionRepo := newMockSessionRepository()
	svc := NewAuthService(ops, NewSessionService(sessionRepo, ops))

	if err := svc.ChangePassword(context.Background(), "op-1", "old", "new-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ops.updatedHash["op-1"]; !ok {
		t.Error("password hash not updated")
	}
	if len(sessionRepo.deletedByOp) != 1 || sessionRepo.deletedByOp[0] != "op-1" {
		t.Errorf("expected all sessions for op-1 deleted, got %v", sessionRepo.deletedByOp)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	ops := newMockOperatorRepository(&model.Operator{
		ID: "op-1", Email: "admin@benbol.com",
		PasswordHash: hashOf(t, "old"), Role: model.RoleAdmin,
	})
	svc := NewAuthService(ops, NewSessionService(newMockSessionRepository(), ops))

	err := svc.ChangePassword(context.Background(), "op-1", "not-old", "new")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(ops.updatedHash) != 0 {
		t.Error("password must not change on failed verification")
	}
}
