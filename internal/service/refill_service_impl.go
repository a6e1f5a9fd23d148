package service

import (
	"context"
	"log/slog"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
)

// refillServiceImpl is the production implementation of RefillService.
type refillServiceImpl struct {
	repo repository.RefillRepository
}

// NewRefillService creates a RefillService backed by the given repository.
func NewRefillService(repo repository.RefillRepository) RefillService {
	return &refillServiceImpl{repo: repo}
}

// Request stores a new refill request with the kind's default status
// ("pending"). Fulfilment falls back to pickup when the form left it out.
func (s *refillServiceImpl) Request(ctx context.Context, r *model.RefillRequest) error {
	r.IsRead = false
	r.IsArchived = false
	r.Status = model.KindRefill.DefaultStatus()
	if r.Fulfilment == "" {
		r.Fulfilment = model.FulfilmentPickup
	}
	if err := s.repo.Save(ctx, r); err != nil {
		slog.Error("refill request failed", "error", err)
		return err
	}
	slog.Info("refill requested", "id", r.ID, "medication", r.Medication, "fulfilment", r.Fulfilment)
	return nil
}

func (s *refillServiceImpl) List(ctx context.Context) ([]*model.RefillRequest, error) {
	return s.repo.List(ctx)
}
