package handler

import (
	"encoding/json"
	"net/http"

	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/service"
)

// RefillHandler handles public prescription refill requests.
type RefillHandler struct {
	refillService service.RefillService
}

// NewRefillHandler creates a RefillHandler with the given service.
func NewRefillHandler(refillService service.RefillService) *RefillHandler {
	return &RefillHandler{refillService: refillService}
}

// refillRequest is the expected JSON body for POST /api/refills.
type refillRequest struct {
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	PrescriptionNumber string `json:"prescription_number"`
	Medication         string `json:"medication"`
	Fulfilment         string `json:"fulfilment"`
	Notes              string `json:"notes"`
}

// Request handles POST /api/refills.
// full_name, phone and medication are required; fulfilment must be
// pickup or delivery when present.
func (h *RefillHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req refillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.FullName == "" {
		writeError(w, http.StatusBadRequest, "full_name_required")
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone_required")
		return
	}
	if req.Medication == "" {
		writeError(w, http.StatusBadRequest, "medication_required")
		return
	}
	if req.Fulfilment != "" &&
		req.Fulfilment != model.FulfilmentPickup && req.Fulfilment != model.FulfilmentDelivery {
		writeError(w, http.StatusBadRequest, "fulfilment_invalid")
		return
	}

	rr := &model.RefillRequest{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		PrescriptionNumber: req.PrescriptionNumber,
		Medication:         req.Medication,
		Fulfilment:         req.Fulfilment,
		Notes:              req.Notes,
	}
	if err := h.refillService.Request(r.Context(), rr); err != nil {
		writeError(w, http.StatusInternalServerError, "request_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": rr.ID})
}
