package payroll

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

type PayrollService interface {
	// SetBaseSalary stores a new base salary and returns the recomputed structure.
	SetBaseSalary(ctx context.Context, req SetBaseSalaryRequest) (SalaryResponse, error)
	GetSalary(ctx context.Context, employeeID string) (SalaryResponse, error)
	ListSalaries(ctx context.Context) (PayrollSummaryResponse, error)
	// TotalPayroll sums net salaries across configured employees.
	TotalPayroll(ctx context.Context) (decimal.Decimal, error)
	// WritePayslip renders the employee's payslip as PDF to w.
	WritePayslip(ctx context.Context, employeeID string, w io.Writer) error
	// SeedDefaults writes defaults only when no salary is stored yet.
	SeedDefaults(ctx context.Context, defaults map[string]decimal.Decimal) error
}
