package model

import "time"

// Session is a DB-backed operator login session identified by an opaque
// token.
type Session struct {
	Token      string    `json:"-"`
	OperatorID string    `json:"operator_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
