package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	seed       []employee.Employee
	registered employee.RegisteredRepository
	profiles   employee.ProfileRepository
	clock      clock.Clock
}

func NewEmployeeService(
	seed []employee.Employee,
	registered employee.RegisteredRepository,
	profiles employee.ProfileRepository,
	clk clock.Clock,
) employee.DirectoryService {
	return &EmployeeServiceImpl{
		seed:       seed,
		registered: registered,
		profiles:   profiles,
		clock:      clk,
	}
}

// List implements employee.DirectoryService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	registered, err := s.registered.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered employees: %w", err)
	}

	merged := employee.Merge(s.seed, registered)
	for i, e := range merged {
		overlay, err := s.profiles.Get(ctx, e.EmployeeID)
		if errors.Is(err, employee.ErrProfileNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get profile for %s: %w", e.EmployeeID, err)
		}
		merged[i] = overlay.Apply(e)
	}
	return merged, nil
}

// Get implements employee.DirectoryService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.Employee, error) {
	all, err := s.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range all {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Search implements employee.DirectoryService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.EmployeeResponse, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(all))
	for _, e := range all {
		if e.Matches(filter.Query, filter.Department) {
			result = append(result, employee.ToResponse(e))
		}
	}
	return result, nil
}

// Register implements employee.DirectoryService.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	all, err := s.List(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	for _, e := range all {
		if strings.EqualFold(e.EmployeeID, req.EmployeeID) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
		}
		if strings.EqualFold(e.Email, req.Email) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.RegisteredEmployee{
		Employee: employee.Employee{
			EmployeeID:      req.EmployeeID,
			Name:            strings.TrimSpace(req.Name),
			Email:           req.Email,
			Department:      strings.TrimSpace(req.Department),
			Role:            req.Role,
			Phone:           req.Phone,
			Address:         req.Address,
			NeedsOnboarding: true,
		},
		PasswordHash: string(hash),
		RegisteredAt: s.clock.Now(),
	}
	if err := s.registered.Add(ctx, newEmployee); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to add employee: %w", err)
	}

	slog.Info("Registered employee", "employee_id", newEmployee.EmployeeID, "role", newEmployee.Role)
	return employee.ToResponse(newEmployee.Employee), nil
}

// Upsert implements employee.DirectoryService.
func (s *EmployeeServiceImpl) Upsert(ctx context.Context, actor access.Subject, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	isSelf := actor.EmployeeID == req.EmployeeID
	fields := req.Fields()
	if err := access.AuthorizeFields(actor, fields, isSelf); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if len(fields) == 0 {
		return employee.EmployeeResponse{}, employee.ErrNothingToUpdate
	}

	if _, err := s.Get(ctx, req.EmployeeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	overlay, err := s.loadOverlay(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		overlay.Name = &name
	}
	if req.Department != nil {
		department := strings.TrimSpace(*req.Department)
		overlay.Department = &department
	}
	if req.Role != nil {
		overlay.Role = req.Role
	}
	if req.Phone != nil {
		overlay.Phone = req.Phone
	}
	if req.Address != nil {
		overlay.Address = req.Address
	}
	if req.ProfilePhoto != nil {
		overlay.ProfilePhoto = req.ProfilePhoto
	}
	overlay.UpdatedAt = s.clock.Now()

	if err := s.profiles.Save(ctx, overlay); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	updated, err := s.Get(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Updated employee profile", "employee_id", req.EmployeeID, "actor", actor.EmployeeID, "fields", len(fields))
	return employee.ToResponse(updated), nil
}

// CompleteOnboarding implements employee.DirectoryService.
func (s *EmployeeServiceImpl) CompleteOnboarding(ctx context.Context, req employee.CompleteOnboardingRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.Get(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !current.NeedsOnboarding {
		return employee.EmployeeResponse{}, employee.ErrOnboardingCompleted
	}

	overlay, err := s.loadOverlay(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	overlay.Phone = &phone
	overlay.Address = &address
	if req.ProfilePhoto != nil {
		overlay.ProfilePhoto = req.ProfilePhoto
	}
	overlay.OnboardingCompleted = true
	overlay.UpdatedAt = s.clock.Now()

	if err := s.profiles.Save(ctx, overlay); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	slog.Info("Completed onboarding", "employee_id", req.EmployeeID)
	return employee.ToResponse(overlay.Apply(current)), nil
}

func (s *EmployeeServiceImpl) loadOverlay(ctx context.Context, employeeID string) (employee.ProfileOverlay, error) {
	overlay, err := s.profiles.Get(ctx, employeeID)
	if errors.Is(err, employee.ErrProfileNotFound) {
		return employee.ProfileOverlay{EmployeeID: employeeID}, nil
	}
	if err != nil {
		return employee.ProfileOverlay{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return overlay, nil
}
