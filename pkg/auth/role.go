package auth

import "context"

// ViewerRole is the least-privileged role. Requests whose role could not
// be resolved fall back to it.
const ViewerRole = "viewer"

// WithRole stores the operator's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext returns the authenticated operator's role. Returns
// ViewerRole when not set, never an elevated default.
func RoleFromContext(ctx context.Context) string {
	v, ok := ctx.Value(roleKey).(string)
	if !ok || v == "" {
		return ViewerRole
	}
	return v
}
