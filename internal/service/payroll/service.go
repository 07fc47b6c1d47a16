package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	salaryRepo payroll.SalaryRepository
	directory  employee.Reader
	clock      clock.Clock
}

func NewPayrollService(
	salaryRepo payroll.SalaryRepository,
	directory employee.Reader,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		salaryRepo: salaryRepo,
		directory:  directory,
		clock:      clk,
	}
}

func mapSalaryToResponse(s payroll.SalaryStructure) payroll.SalaryResponse {
	return payroll.SalaryResponse{
		EmployeeID:      s.EmployeeID,
		BaseSalary:      s.BaseSalary,
		Allowances:      s.Allowances,
		Bonus:           s.Bonus,
		TotalEarnings:   s.TotalEarnings,
		Tax:             s.Tax,
		Insurance:       s.Insurance,
		Retirement:      s.Retirement,
		TotalDeductions: s.TotalDeductions,
		NetSalary:       s.NetSalary,
	}
}

func withEmployee(resp payroll.SalaryResponse, e employee.Employee) payroll.SalaryResponse {
	resp.EmployeeName = e.Name
	resp.Department = e.Department
	return resp
}

// SetBaseSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetBaseSalary(ctx context.Context, req payroll.SetBaseSalaryRequest) (payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryResponse{}, err
	}

	emp, err := s.directory.Get(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	structure, err := payroll.ComputeFor(req.EmployeeID, *req.BaseSalary)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	if err := s.salaryRepo.Save(ctx, structure); err != nil {
		return payroll.SalaryResponse{}, fmt.Errorf("failed to save salary: %w", err)
	}

	slog.Info("Base salary set", "employee_id", req.EmployeeID, "base_salary", structure.BaseSalary.String(), "net_salary", structure.NetSalary.String())
	return withEmployee(mapSalaryToResponse(structure), emp), nil
}

// GetSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSalary(ctx context.Context, employeeID string) (payroll.SalaryResponse, error) {
	emp, err := s.directory.Get(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	structure, err := s.salaryRepo.Get(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return withEmployee(mapSalaryToResponse(structure), emp), nil
}

// ListSalaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListSalaries(ctx context.Context) (payroll.PayrollSummaryResponse, error) {
	structures, err := s.salaryRepo.List(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list salaries: %w", err)
	}
	employees, err := s.directory.List(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.EmployeeID] = e
	}

	summary := payroll.PayrollSummaryResponse{
		Salaries:     make([]payroll.SalaryResponse, 0, len(structures)),
		TotalPayroll: decimal.Zero,
		Unconfigured: []string{},
	}
	configured := make(map[string]bool, len(structures))
	for _, st := range structures {
		resp := mapSalaryToResponse(st)
		if e, ok := byID[st.EmployeeID]; ok {
			resp = withEmployee(resp, e)
		}
		summary.Salaries = append(summary.Salaries, resp)
		summary.TotalPayroll = summary.TotalPayroll.Add(st.NetSalary)
		configured[st.EmployeeID] = true
	}
	for _, e := range employees {
		if !configured[e.EmployeeID] {
			summary.Unconfigured = append(summary.Unconfigured, e.EmployeeID)
		}
	}
	return summary, nil
}

// TotalPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) TotalPayroll(ctx context.Context) (decimal.Decimal, error) {
	structures, err := s.salaryRepo.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list salaries: %w", err)
	}

	total := decimal.Zero
	for _, st := range structures {
		total = total.Add(st.NetSalary)
	}
	return total, nil
}

// SeedDefaults implements payroll.PayrollService.
func (s *PayrollServiceImpl) SeedDefaults(ctx context.Context, defaults map[string]decimal.Decimal) error {
	existing, err := s.salaryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list salaries: %w", err)
	}
	if len(existing) > 0 {
		slog.Debug("Salary data present, skipping defaults", "count", len(existing))
		return nil
	}

	var errs []error
	for employeeID, base := range defaults {
		structure, err := payroll.ComputeFor(employeeID, base)
		if err != nil {
			errs = append(errs, fmt.Errorf("default salary for %s: %w", employeeID, err))
			continue
		}
		if err := s.salaryRepo.Save(ctx, structure); err != nil {
			errs = append(errs, fmt.Errorf("failed to save default salary for %s: %w", employeeID, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	slog.Info("Seeded default salaries", "count", len(defaults))
	return nil
}
