package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	repo      leave.Repository
	directory employee.Reader
	clock     clock.Clock
}

func NewLeaveService(repo leave.Repository, directory employee.Reader, clk clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		repo:      repo,
		directory: directory,
		clock:     clk,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	emp, err := s.directory.Get(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	request := leave.LeaveRequest{
		ID:            id.String(),
		EmployeeID:    req.EmployeeID,
		Type:          req.Type,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        strings.TrimSpace(req.Reason),
		Status:        leave.StatusPending,
		SubmittedDate: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to save leave request: %w", err)
	}

	slog.Info("Leave request submitted", "id", request.ID, "employee_id", request.EmployeeID, "type", request.Type)
	return annotate(leave.ToResponse(request), emp), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.repo.Get(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided, err := request.Decide(req.Decision, req.Comment, req.ReviewedBy)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := s.repo.Save(ctx, decided); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to save leave request: %w", err)
	}

	slog.Info("Leave request decided", "id", decided.ID, "employee_id", decided.EmployeeID, "status", decided.Status)

	responses, err := s.enrich(ctx, []leave.LeaveRequest{decided})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return responses[0], nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	responses, err := s.enrich(ctx, []leave.LeaveRequest{request})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return responses[0], nil
}

// ListForEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	return s.list(ctx, func(r leave.LeaveRequest) bool { return r.EmployeeID == employeeID })
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	return s.list(ctx, func(r leave.LeaveRequest) bool { return r.Status == leave.StatusPending })
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) (leave.GroupedResponse, error) {
	all, err := s.list(ctx, func(leave.LeaveRequest) bool { return true })
	if err != nil {
		return leave.GroupedResponse{}, err
	}

	grouped := leave.GroupedResponse{
		Pending:   []leave.LeaveRequestResponse{},
		Processed: []leave.LeaveRequestResponse{},
	}
	for _, r := range all {
		if r.Status == leave.StatusPending {
			grouped.Pending = append(grouped.Pending, r)
		} else {
			grouped.Processed = append(grouped.Processed, r)
		}
	}
	return grouped, nil
}

// CountPending implements leave.LeaveService.
func (s *LeaveServiceImpl) CountPending(ctx context.Context, employeeID string) (int, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	count := 0
	for _, r := range requests {
		if r.Status != leave.StatusPending {
			continue
		}
		if employeeID == "" || r.EmployeeID == employeeID {
			count++
		}
	}
	return count, nil
}

func (s *LeaveServiceImpl) list(ctx context.Context, keep func(leave.LeaveRequest) bool) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	filtered := make([]leave.LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	// Newest submission first; ids are time-ordered so they break ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].SubmittedDate.Equal(filtered[j].SubmittedDate) {
			return filtered[i].SubmittedDate.After(filtered[j].SubmittedDate)
		}
		return filtered[i].ID > filtered[j].ID
	})
	return s.enrich(ctx, filtered)
}

// enrich annotates requests with directory names. Requests from employees
// no longer in the directory are returned without annotation.
func (s *LeaveServiceImpl) enrich(ctx context.Context, requests []leave.LeaveRequest) ([]leave.LeaveRequestResponse, error) {
	employees, err := s.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.EmployeeID] = e
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp := leave.ToResponse(r)
		if e, ok := byID[r.EmployeeID]; ok {
			resp = annotate(resp, e)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func annotate(resp leave.LeaveRequestResponse, e employee.Employee) leave.LeaveRequestResponse {
	resp.EmployeeName = e.Name
	resp.Department = e.Department
	return resp
}
