package payroll

import "errors"

var (
	ErrSalaryNotFound = errors.New("salary not configured for employee")
)
