package kv

import (
	"context"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
)

type LeaveRequestRepository struct {
	store kvstore.Store
}

func NewLeaveRequestRepository(store kvstore.Store) leave.Repository {
	return &LeaveRequestRepository{store: store}
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	if _, err := load(ctx, r.store, keyLeaveRequests, &requests); err != nil {
		return nil, err
	}
	for _, req := range requests {
		if err := req.Validate(); err != nil {
			return nil, corrupt(keyLeaveRequests, err)
		}
	}
	return requests, nil
}

func (r *LeaveRequestRepository) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	requests, err := r.List(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *LeaveRequestRepository) Save(ctx context.Context, req leave.LeaveRequest) error {
	requests, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range requests {
		if requests[i].ID == req.ID {
			requests[i] = req
			replaced = true
			break
		}
	}
	if !replaced {
		requests = append(requests, req)
	}
	return save(ctx, r.store, keyLeaveRequests, requests)
}
