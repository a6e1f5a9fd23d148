package service

import (
	"context"

	"github.com/benbol/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact submission. c.ID and c.CreatedAt are
	// populated by the implementation.
	Submit(ctx context.Context, c *model.ContactSubmission) error

	// List returns every contact submission, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}
