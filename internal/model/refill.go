package model

import "time"

// Refill fulfilment methods.
const (
	FulfilmentPickup   = "pickup"
	FulfilmentDelivery = "delivery"
)

// RefillRequest is a prescription refill submitted via the public refill
// form.
type RefillRequest struct {
	ID                 string `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	PrescriptionNumber string `json:"prescription_number,omitempty"`
	Medication         string `json:"medication"`
	Fulfilment         string `json:"fulfilment"`
	Notes              string `json:"notes,omitempty"`
	TriageFields
	CreatedAt time.Time `json:"created_at"`
}

func (r *RefillRequest) RecordID() string      { return r.ID }
func (r *RefillRequest) Triage() *TriageFields { return &r.TriageFields }
