package leave

import (
	"context"
)

type LeaveService interface {
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, req DecideRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, id string) (LeaveRequestResponse, error)
	// Listings are ordered newest submission first.
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context) (GroupedResponse, error)
	// CountPending counts Pending requests; an empty employeeID counts everyone.
	CountPending(ctx context.Context, employeeID string) (int, error)
}
