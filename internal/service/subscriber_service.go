package service

import (
	"context"

	"github.com/benbol/backend/internal/model"
)

// SubscriberService defines the business logic for newsletter signups.
type SubscriberService interface {
	// Subscribe stores a new subscriber. A second signup with the same
	// email returns repository.ErrDuplicate.
	Subscribe(ctx context.Context, sub *model.NewsletterSubscriber) error

	// List returns every subscriber, newest first.
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)
}
