package payroll

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SetBaseSalaryRequest struct {
	EmployeeID string           `json:"-"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
}

func (r *SetBaseSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary is required",
		})
	} else if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	Department      string          `json:"department,omitempty"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Allowances      decimal.Decimal `json:"allowances"`
	Bonus           decimal.Decimal `json:"bonus"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	Tax             decimal.Decimal `json:"tax"`
	Insurance       decimal.Decimal `json:"insurance"`
	Retirement      decimal.Decimal `json:"retirement"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

type PayrollSummaryResponse struct {
	Salaries     []SalaryResponse `json:"salaries"`
	TotalPayroll decimal.Decimal  `json:"total_payroll"`
	// Employees in the directory without a configured salary.
	Unconfigured []string `json:"unconfigured"`
}
