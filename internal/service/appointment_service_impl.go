package service

import (
	"context"
	"log/slog"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/repository"
)

// appointmentServiceImpl is the production implementation of AppointmentService.
type appointmentServiceImpl struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService creates an AppointmentService backed by the given repository.
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentServiceImpl{repo: repo}
}

// Book stores a new appointment with the kind's default status ("pending").
func (s *appointmentServiceImpl) Book(ctx context.Context, a *model.Appointment) error {
	a.IsRead = false
	a.IsArchived = false
	a.Status = model.KindAppointment.DefaultStatus()
	if err := s.repo.Save(ctx, a); err != nil {
		slog.Error("appointment booking failed", "error", err)
		return err
	}
	slog.Info("appointment booked", "id", a.ID, "service", a.Service, "preferred_date", a.PreferredDate)
	return nil
}

func (s *appointmentServiceImpl) List(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}
