package service

import (
	"context"

	"github.com/benbol/backend/internal/model"
)

// AppointmentService defines the business logic for consultation bookings.
type AppointmentService interface {
	// Book stores a new appointment request. a.ID and a.CreatedAt are
	// populated by the implementation.
	Book(ctx context.Context, a *model.Appointment) error

	// List returns every appointment, newest first.
	List(ctx context.Context) ([]*model.Appointment, error)
}
