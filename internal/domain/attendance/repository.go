package attendance

import "context"

// Repository stores attendance records per employee. At most one record per
// employee per date.
type Repository interface {
	// ListByEmployee returns stored records newest date first; empty when none.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	// Save inserts the record or replaces the one with the same date.
	Save(ctx context.Context, employeeID string, record Record) error
}
