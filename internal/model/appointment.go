package model

import "time"

// Appointment is a consultation booking submitted via the public booking
// form.
type Appointment struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Notes         string `json:"notes,omitempty"`
	TriageFields
	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) RecordID() string      { return a.ID }
func (a *Appointment) Triage() *TriageFields { return &a.TriageFields }
