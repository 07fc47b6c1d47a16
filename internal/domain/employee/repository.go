package employee

import "context"

// RegisteredRepository stores employees added through registration.
type RegisteredRepository interface {
	List(ctx context.Context) ([]RegisteredEmployee, error)
	Add(ctx context.Context, e RegisteredEmployee) error
}

// ProfileRepository stores one overlay per employee.
type ProfileRepository interface {
	// Get returns ErrProfileNotFound when the employee has no overlay.
	Get(ctx context.Context, employeeID string) (ProfileOverlay, error)
	Save(ctx context.Context, overlay ProfileOverlay) error
}
