package employee

import (
	"strings"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

type Employee struct {
	EmployeeID      string    `json:"employeeId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Department      string    `json:"department"`
	Role            user.Role `json:"role"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	ProfilePhoto    *string   `json:"profilePhoto,omitempty"`
	NeedsOnboarding bool      `json:"needsOnboarding"`
}

// Validate checks the fixed field set of a stored or seeded employee.
func (e Employee) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(e.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is invalid"})
	}
	if validator.IsEmpty(e.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(e.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if !e.Role.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee or admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisteredEmployee is an employee added after seeding. PasswordHash is
// read by the identity collaborator, never returned by the API.
type RegisteredEmployee struct {
	Employee
	PasswordHash string    `json:"passwordHash"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func (r RegisteredEmployee) Validate() error {
	if err := r.Employee.Validate(); err != nil {
		return err
	}
	if validator.IsEmpty(r.PasswordHash) {
		return validator.Single("passwordHash", "passwordHash is required")
	}
	return nil
}

// ProfileOverlay records edits made after an employee was created. It is
// applied over the merged directory record at read time.
type ProfileOverlay struct {
	EmployeeID          string     `json:"employeeId"`
	Name                *string    `json:"name,omitempty"`
	Department          *string    `json:"department,omitempty"`
	Role                *user.Role `json:"role,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	Address             *string    `json:"address,omitempty"`
	ProfilePhoto        *string    `json:"profilePhoto,omitempty"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (o ProfileOverlay) Validate() error {
	if validator.IsEmpty(o.EmployeeID) {
		return validator.Single("employeeId", "employeeId is required")
	}
	if o.Role != nil && !o.Role.IsValid() {
		return validator.Single("role", "role must be employee or admin")
	}
	return nil
}

// Apply returns e with every field set in o copied over it.
func (o ProfileOverlay) Apply(e Employee) Employee {
	if o.Name != nil {
		e.Name = *o.Name
	}
	if o.Department != nil {
		e.Department = *o.Department
	}
	if o.Role != nil {
		e.Role = *o.Role
	}
	if o.Phone != nil {
		e.Phone = o.Phone
	}
	if o.Address != nil {
		e.Address = o.Address
	}
	if o.ProfilePhoto != nil {
		e.ProfilePhoto = o.ProfilePhoto
	}
	if o.OnboardingCompleted {
		e.NeedsOnboarding = false
	}
	return e
}

// Merge unions the seed and registered sets. A registered record whose
// employeeId matches a seed record is dropped whole; seed order comes first,
// then registration order.
func Merge(seed []Employee, registered []RegisteredEmployee) []Employee {
	seen := make(map[string]bool, len(seed)+len(registered))
	merged := make([]Employee, 0, len(seed)+len(registered))

	for _, e := range seed {
		if seen[e.EmployeeID] {
			continue
		}
		seen[e.EmployeeID] = true
		merged = append(merged, e)
	}
	for _, r := range registered {
		if seen[r.EmployeeID] {
			continue
		}
		seen[r.EmployeeID] = true
		merged = append(merged, r.Employee)
	}
	return merged
}

// Matches reports whether e matches a case-insensitive query on name, email
// or employee id and, when department is set, belongs to it.
func (e Employee) Matches(query, department string) bool {
	if department != "" && !strings.EqualFold(e.Department, department) {
		return false
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Email), query) ||
		strings.Contains(strings.ToLower(e.EmployeeID), query)
}
