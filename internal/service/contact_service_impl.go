package service

import (
	"context"
	"log/slog"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact submission. Triage flags start unset and
// the status at the kind's default ("new").
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.ContactSubmission) error {
	c.IsRead = false
	c.IsArchived = false
	c.Status = model.KindContact.DefaultStatus()
	if err := s.repo.Save(ctx, c); err != nil {
		slog.Error("contact submit failed", "error", err)
		return err
	}
	slog.Info("contact submitted", "id", c.ID, "email", c.Email)
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}
