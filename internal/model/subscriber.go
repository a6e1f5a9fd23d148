package model

import "time"

// NewsletterSubscriber is an email address captured by the newsletter
// signup form. Email is unique; duplicate signups surface as a conflict,
// not a second row.
type NewsletterSubscriber struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	TriageFields
	CreatedAt time.Time `json:"created_at"`
}

func (s *NewsletterSubscriber) RecordID() string      { return s.ID }
func (s *NewsletterSubscriber) Triage() *TriageFields { return &s.TriageFields }
