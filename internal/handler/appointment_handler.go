package handler

import (
	"encoding/json"
	"net/http"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/service"
)

// AppointmentHandler handles public consultation bookings.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler with the given service.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// bookRequest is the expected JSON body for POST /api/appointments.
type bookRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}

// Book handles POST /api/appointments.
// full_name, email, service and preferred_date are required.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.FullName == "" {
		writeError(w, http.StatusBadRequest, "full_name_required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if req.Service == "" {
		writeError(w, http.StatusBadRequest, "service_required")
		return
	}
	if req.PreferredDate == "" {
		writeError(w, http.StatusBadRequest, "preferred_date_required")
		return
	}

	a := &model.Appointment{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	}
	if err := h.appointmentService.Book(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, "booking_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": a.ID})
}
