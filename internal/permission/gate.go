// Package permission maps operator roles onto the fixed set of mutations
// the admin dashboard offers. The table is compile-time fixed, not
// configurable.
package permission

import (
	"fmt"

	"github.com/benbol/backend/internal/model"
)

// Operation is one of the gated dashboard mutations.
type Operation string

const (
	OpMarkRead        Operation = "mark_read"
	OpArchive         Operation = "archive"
	OpChangeStatus    Operation = "change_status"
	OpDeleteRecord    Operation = "delete_record"
	OpManageOperators Operation = "manage_operators"
	OpChangeRole      Operation = "change_role"
)

// Operations lists every gated operation.
var Operations = []Operation{
	OpMarkRead, OpArchive, OpChangeStatus,
	OpDeleteRecord, OpManageOperators, OpChangeRole,
}

// DeniedError is returned when an operator's role does not cover the
// attempted operation. Its message names the role the operation requires
// so handlers can surface it directly.
type DeniedError struct {
	Op       Operation
	Role     model.Role
	Required model.Role
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("%s requires the %s role (you are %s)", e.Op, e.Required, e.Role)
}

// requiredRole is the least-privileged role allowed to perform each
// operation. Triage mutations need manager; destructive and
// account-management operations need admin.
var requiredRole = map[Operation]model.Role{
	OpMarkRead:        model.RoleManager,
	OpArchive:         model.RoleManager,
	OpChangeStatus:    model.RoleManager,
	OpDeleteRecord:    model.RoleAdmin,
	OpManageOperators: model.RoleAdmin,
	OpChangeRole:      model.RoleAdmin,
}

// rank orders roles by privilege. Unknown roles rank below viewer, so an
// operator whose role could not be determined is denied every mutation.
func rank(r model.Role) int {
	switch r {
	case model.RoleAdmin:
		return 3
	case model.RoleManager:
		return 2
	case model.RoleViewer:
		return 1
	}
	return 0
}

// Allowed reports whether role may perform op.
func Allowed(role model.Role, op Operation) bool {
	req, ok := requiredRole[op]
	if !ok {
		return false
	}
	return rank(role) >= rank(req)
}

// Check returns nil if role may perform op, and a *DeniedError otherwise.
// Every mutation entry point calls this before touching a record or the
// store.
func Check(role model.Role, op Operation) error {
	if Allowed(role, op) {
		return nil
	}
	return &DeniedError{Op: op, Role: role, Required: requiredRole[op]}
}
