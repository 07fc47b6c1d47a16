package employee

import (
	"strings"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// REGISTRATION
// ========================================

type RegisterEmployeeRequest struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       user.Role `json:"role"`
	Password   string    `json:"password"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Role == "" {
		r.Role = user.RoleEmployee
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id may contain letters, digits, dash and underscore (2-32 characters)"})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}

	if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee or admin"})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at most 72 characters long"})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// PROFILE UPDATE
// ========================================

// UpdateEmployeeRequest is a partial update. EmployeeIDField and Email are
// accepted only so that attempts to change them fail validation.
type UpdateEmployeeRequest struct {
	EmployeeID      string     `json:"-"`
	EmployeeIDField *string    `json:"employee_id,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Name            *string    `json:"name,omitempty"`
	Department      *string    `json:"department,omitempty"`
	Role            *user.Role `json:"role,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Address         *string    `json:"address,omitempty"`
	ProfilePhoto    *string    `json:"profile_photo,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeIDField != nil {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id cannot be changed"})
	}
	if r.Email != nil {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email cannot be changed"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department cannot be empty"})
	}
	if r.Role != nil && !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee or admin"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Fields lists the profile fields the request changes.
func (r *UpdateEmployeeRequest) Fields() []access.Field {
	var fields []access.Field
	if r.Name != nil {
		fields = append(fields, access.FieldName)
	}
	if r.Department != nil {
		fields = append(fields, access.FieldDepartment)
	}
	if r.Role != nil {
		fields = append(fields, access.FieldRole)
	}
	if r.Phone != nil {
		fields = append(fields, access.FieldPhone)
	}
	if r.Address != nil {
		fields = append(fields, access.FieldAddress)
	}
	if r.ProfilePhoto != nil {
		fields = append(fields, access.FieldProfilePhoto)
	}
	return fields
}

// ========================================
// ONBOARDING
// ========================================

type CompleteOnboardingRequest struct {
	EmployeeID   string  `json:"-"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

func (r *CompleteOnboardingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// READ MODELS
// ========================================

type SearchFilter struct {
	Query      string
	Department string
}

type EmployeeResponse struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Department      string  `json:"department"`
	Role            string  `json:"role"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	ProfilePhoto    *string `json:"profile_photo"`
	NeedsOnboarding bool    `json:"needs_onboarding"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:      e.EmployeeID,
		Name:            e.Name,
		Email:           e.Email,
		Department:      e.Department,
		Role:            string(e.Role),
		Phone:           e.Phone,
		Address:         e.Address,
		ProfilePhoto:    e.ProfilePhoto,
		NeedsOnboarding: e.NeedsOnboarding,
	}
}
