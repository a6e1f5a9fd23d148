package service

import (
	"context"

	"github.com/benbol/backend/internal/model"
)

// RefillService defines the business logic for prescription refill requests.
type RefillService interface {
	// Request stores a new refill request. r.ID and r.CreatedAt are
	// populated by the implementation.
	Request(ctx context.Context, r *model.RefillRequest) error

	// List returns every refill request, newest first.
	List(ctx context.Context) ([]*model.RefillRequest, error)
}
