package leave

import "context"

// Repository holds every leave request in one collection.
type Repository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	// Get returns ErrLeaveRequestNotFound for unknown ids.
	Get(ctx context.Context, id string) (LeaveRequest, error)
	// Save inserts the request or replaces the one with the same id.
	Save(ctx context.Context, req LeaveRequest) error
}
