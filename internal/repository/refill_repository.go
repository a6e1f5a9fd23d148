package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RefillRepository defines persistence for prescription refill requests.
type RefillRepository interface {
	Save(ctx context.Context, rr *model.RefillRequest) error
	List(ctx context.Context) ([]*model.RefillRequest, error)
}

// PgRefillRepository is the PostgreSQL implementation of RefillRepository.
type PgRefillRepository struct {
	pool *pgxpool.Pool
}

// NewPgRefillRepository creates a PgRefillRepository backed by the given pool.
func NewPgRefillRepository(pool *pgxpool.Pool) *PgRefillRepository {
	return &PgRefillRepository{pool: pool}
}

var _ RefillRepository = (*PgRefillRepository)(nil)

// Save inserts a refill_requests row and populates rr.ID and CreatedAt.
func (r *PgRefillRepository) Save(ctx context.Context, rr *model.RefillRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO refill_requests (full_name, email, phone, prescription_number, medication, fulfilment, notes, status)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8)
		 RETURNING id, created_at`,
		rr.FullName, rr.Email, rr.Phone, rr.PrescriptionNumber, rr.Medication, rr.Fulfilment, rr.Notes, rr.Status,
	).Scan(&rr.ID, &rr.CreatedAt)
}

// List returns every refill request, newest first.
func (r *PgRefillRepository) List(ctx context.Context) ([]*model.RefillRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, phone, COALESCE(prescription_number, ''), medication,
		        fulfilment, COALESCE(notes, ''), is_read, is_archived, status, created_at
		 FROM refill_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.RefillRequest
	for rows.Next() {
		var rr model.RefillRequest
		if err := rows.Scan(&rr.ID, &rr.FullName, &rr.Email, &rr.Phone, &rr.PrescriptionNumber, &rr.Medication,
			&rr.Fulfilment, &rr.Notes, &rr.IsRead, &rr.IsArchived, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rr)
	}
	return out, rows.Err()
}
