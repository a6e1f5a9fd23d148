package model

import "time"

// ContactSubmission is a message submitted via the public contact form.
type ContactSubmission struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
	TriageFields
	CreatedAt time.Time `json:"created_at"`
}

func (c *ContactSubmission) RecordID() string      { return c.ID }
func (c *ContactSubmission) Triage() *TriageFields { return &c.TriageFields }
