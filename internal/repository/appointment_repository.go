package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentRepository defines persistence for consultation bookings.
type AppointmentRepository interface {
	Save(ctx context.Context, a *model.Appointment) error
	List(ctx context.Context) ([]*model.Appointment, error)
}

// PgAppointmentRepository is the PostgreSQL implementation of AppointmentRepository.
type PgAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPgAppointmentRepository creates a PgAppointmentRepository backed by the given pool.
func NewPgAppointmentRepository(pool *pgxpool.Pool) *PgAppointmentRepository {
	return &PgAppointmentRepository{pool: pool}
}

var _ AppointmentRepository = (*PgAppointmentRepository)(nil)

// Save inserts an appointments row and populates a.ID and CreatedAt.
func (r *PgAppointmentRepository) Save(ctx context.Context, a *model.Appointment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO appointments (full_name, email, phone, service, preferred_date, preferred_time, notes, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
		 RETURNING id, created_at`,
		a.FullName, a.Email, a.Phone, a.Service, a.PreferredDate, a.PreferredTime, a.Notes, a.Status,
	).Scan(&a.ID, &a.CreatedAt)
}

// List returns every appointment, newest first.
func (r *PgAppointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, email, COALESCE(phone, ''), service, preferred_date,
		        COALESCE(preferred_time, ''), COALESCE(notes, ''), is_read, is_archived, status, created_at
		 FROM appointments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Service, &a.PreferredDate,
			&a.PreferredTime, &a.Notes, &a.IsRead, &a.IsArchived, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
