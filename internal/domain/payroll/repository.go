package payroll

import "context"

// SalaryRepository persists base salaries. Implementations return structures
// recomputed from the stored base, never the stored derived amounts.
type SalaryRepository interface {
	Get(ctx context.Context, employeeID string) (SalaryStructure, error)
	List(ctx context.Context) ([]SalaryStructure, error)
	Save(ctx context.Context, salary SalaryStructure) error
}
