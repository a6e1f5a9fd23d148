package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines persistence for contact form submissions.
type ContactRepository interface {
	Save(ctx context.Context, c *model.ContactSubmission) error
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a contact_submissions row and populates c.ID and CreatedAt
// from the RETURNING clause. Triage flags start at their zero values and
// status at the kind default.
func (r *PgContactRepository) Save(ctx context.Context, c *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (full_name, email, phone, subject, message, status)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		 RETURNING id, created_at`,
		c.FullName, c.Email, c.Phone, c.Subject, c.Message, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

const contactSelectCols = `id, full_name, email, COALESCE(phone, ''), COALESCE(subject, ''), message, is_read, is_archived, status, created_at`

// List returns every contact submission, newest first. The dashboard
// filters in memory, so no WHERE clauses here.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactSelectCols+` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ContactSubmission
	for rows.Next() {
		var c model.ContactSubmission
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Subject, &c.Message,
			&c.IsRead, &c.IsArchived, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
