package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
)

// subscriberServiceImpl is the production implementation of SubscriberService.
type subscriberServiceImpl struct {
	repo repository.SubscriberRepository
}

// NewSubscriberService creates a SubscriberService backed by the given repository.
func NewSubscriberService(repo repository.SubscriberRepository) SubscriberService {
	return &subscriberServiceImpl{repo: repo}
}

// Subscribe stores a new subscriber. The email is lowercased before
// persisting so duplicate detection is case-insensitive.
func (s *subscriberServiceImpl) Subscribe(ctx context.Context, sub *model.NewsletterSubscriber) error {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	err := s.repo.Save(ctx, sub)
	if errors.Is(err, repository.ErrDuplicate) {
		slog.Info("newsletter signup ignored, already subscribed", "email", sub.Email)
		return err
	}
	if err != nil {
		slog.Error("newsletter signup failed", "error", err)
		return err
	}
	slog.Info("newsletter signup", "id", sub.ID, "email", sub.Email)
	return nil
}

func (s *subscriberServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	return s.repo.List(ctx)
}
