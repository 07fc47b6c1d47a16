package fixtures

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// SEED DIRECTORY
// ==========================================

// SeedEmployees returns the fixed directory every deployment starts with.
// A fresh slice is returned on each call so callers may modify it.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			EmployeeID: "EMP001",
			Name:       "John Doe",
			Email:      "john.doe@dayflow.com",
			Department: "Engineering",
			Role:       user.RoleEmployee,
			Phone:      strPtr("+1-555-0123"),
			Address:    strPtr("123 Main St, San Francisco, CA"),
		},
		{
			EmployeeID: "EMP002",
			Name:       "Jane Smith",
			Email:      "jane.smith@dayflow.com",
			Department: "Human Resources",
			Role:       user.RoleAdmin,
			Phone:      strPtr("+1-555-0124"),
			Address:    strPtr("456 Oak Ave, San Francisco, CA"),
		},
		{
			EmployeeID:      "EMP003",
			Name:            "New Employee",
			Email:           "new.employee@dayflow.com",
			Department:      "Marketing",
			Role:            user.RoleEmployee,
			NeedsOnboarding: true,
		},
		{
			EmployeeID: "EMP004",
			Name:       "Alice Johnson",
			Email:      "alice.johnson@dayflow.com",
			Department: "Sales",
			Role:       user.RoleEmployee,
			Phone:      strPtr("+1-555-0125"),
			Address:    strPtr("789 Pine St, San Francisco, CA"),
		},
		{
			EmployeeID: "EMP005",
			Name:       "Bob Wilson",
			Email:      "bob.wilson@dayflow.com",
			Department: "Engineering",
			Role:       user.RoleEmployee,
			Phone:      strPtr("+1-555-0126"),
			Address:    strPtr("321 Elm St, San Francisco, CA"),
		},
	}
}

// ==========================================
// DEFAULT SALARIES
// ==========================================

// DefaultSalaries maps each seed employee to the base salary written when
// the salary collection is empty.
func DefaultSalaries() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"EMP001": decimal.NewFromInt(85000),
		"EMP002": decimal.NewFromInt(120000),
		"EMP003": decimal.NewFromInt(75000),
		"EMP004": decimal.NewFromInt(90000),
		"EMP005": decimal.NewFromInt(95000),
	}
}
