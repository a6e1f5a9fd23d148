package model

import "time"

// Role is an operator's authorization level. It is the sole authorization
// attribute; what each role may do is fixed in the permission package.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// ValidRole reports whether r is a known operator role.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

// Operator is an authenticated back-office user.
type Operator struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
