package employee

import (
	"context"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
)

// Reader is the lookup other components use to annotate their records.
type Reader interface {
	// List returns the merged directory with profile overlays applied.
	List(ctx context.Context) ([]Employee, error)
	// Get returns ErrEmployeeNotFound for unknown ids.
	Get(ctx context.Context, employeeID string) (Employee, error)
}

// DirectoryService defines business logic for the employee directory
type DirectoryService interface {
	Reader

	// Search filters the merged directory by free text and department
	Search(ctx context.Context, filter SearchFilter) ([]EmployeeResponse, error)

	// Register adds a new employee; employee id and email must be unique
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	// Upsert applies a partial update after checking every field against the policy
	Upsert(ctx context.Context, actor access.Subject, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// CompleteOnboarding stores contact details and clears needsOnboarding for good
	CompleteOnboarding(ctx context.Context, req CompleteOnboardingRequest) (EmployeeResponse, error)
}
