package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeIDExists    = errors.New("Employee ID already exists")
	ErrEmailExists         = errors.New("Email already registered")
	ErrProfileNotFound     = errors.New("profile overlay not found")
	ErrOnboardingCompleted = errors.New("onboarding already completed")
	ErrNothingToUpdate     = errors.New("no fields to update")
)
