package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriberRepository defines persistence for newsletter subscribers.
type SubscriberRepository interface {
	// Save inserts a subscriber. A duplicate email returns ErrDuplicate.
	Save(ctx context.Context, s *model.NewsletterSubscriber) error
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)
}

// PgSubscriberRepository is the PostgreSQL implementation of SubscriberRepository.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by the given pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// Save inserts a newsletter_subscribers row. The email column carries a
// unique constraint; a conflict is translated to ErrDuplicate so the
// handler can answer "already subscribed" instead of a generic failure.
func (r *PgSubscriberRepository) Save(ctx context.Context, s *model.NewsletterSubscriber) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, full_name)
		 VALUES ($1, NULLIF($2, ''))
		 RETURNING id, created_at`,
		s.Email, s.FullName,
	).Scan(&s.ID, &s.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// List returns every subscriber, newest first.
func (r *PgSubscriberRepository) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, COALESCE(full_name, ''), is_read, is_archived, created_at
		 FROM newsletter_subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.NewsletterSubscriber
	for rows.Next() {
		var s model.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.FullName, &s.IsRead, &s.IsArchived, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
