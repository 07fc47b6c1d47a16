package payroll

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	AllowanceRate  = decimal.RequireFromString("0.12")
	TaxRate        = decimal.RequireFromString("0.20")
	RetirementRate = decimal.RequireFromString("0.07")
	FixedBonus     = decimal.NewFromInt(5000)
	FixedInsurance = decimal.NewFromInt(3000)
)

// ComputeSalary derives the salary breakdown from base. Each derived term is
// rounded half-up to whole units on its own before any sum uses it.
func ComputeSalary(base decimal.Decimal) (SalaryStructure, error) {
	if base.IsNegative() {
		return SalaryStructure{}, validator.Single("base_salary", "base salary must not be negative")
	}

	allowances := roundHalfUp(base.Mul(AllowanceRate))
	totalEarnings := base.Add(allowances).Add(FixedBonus)
	tax := roundHalfUp(totalEarnings.Mul(TaxRate))
	retirement := roundHalfUp(base.Mul(RetirementRate))
	totalDeductions := tax.Add(FixedInsurance).Add(retirement)

	return SalaryStructure{
		BaseSalary:      base,
		Allowances:      allowances,
		Bonus:           FixedBonus,
		TotalEarnings:   totalEarnings,
		Tax:             tax,
		Insurance:       FixedInsurance,
		Retirement:      retirement,
		TotalDeductions: totalDeductions,
		NetSalary:       totalEarnings.Sub(totalDeductions),
	}, nil
}

// ComputeFor is ComputeSalary with the structure keyed to employeeID.
func ComputeFor(employeeID string, base decimal.Decimal) (SalaryStructure, error) {
	s, err := ComputeSalary(base)
	if err != nil {
		return SalaryStructure{}, err
	}
	s.EmployeeID = employeeID
	return s, nil
}

// Inputs are never negative, so rounding half away from zero is half-up.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
