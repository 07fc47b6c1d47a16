package payroll

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryStructure is the full compensation breakdown for one employee.
// Only BaseSalary is an input; every other amount is derived by ComputeSalary.
type SalaryStructure struct {
	EmployeeID      string          `json:"employeeId"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	Allowances      decimal.Decimal `json:"allowances"`
	Bonus           decimal.Decimal `json:"bonus"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	Retirement      decimal.Decimal `json:"retirement"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetSalary       decimal.Decimal `json:"netSalary"`
}

// Validate checks a structure read back from storage.
func (s SalaryStructure) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(s.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}
	if s.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "baseSalary",
			Message: "baseSalary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
