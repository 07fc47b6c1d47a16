package user

import "context"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleAdmin    Role = "admin"    // HR administrator - full access
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Identity is what the identity collaborator asserts about the current
// session. It is trusted as-is.
type Identity struct {
	EmployeeID      string
	Email           string
	Role            Role
	NeedsOnboarding bool
}

// IsAdmin checks if the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type identityKey struct{}

// WithIdentity stores the session identity on ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the session identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
