package payroll

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/fixtures"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
	employeeservice "github.com/dayflow-hris/workforce-backend-go/internal/service/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newTestService() payroll.PayrollService {
	store := kvstore.NewMemory()
	clk := clock.Fixed(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	directory := employeeservice.NewEmployeeService(
		fixtures.SeedEmployees(),
		kv.NewRegisteredEmployeeRepository(store),
		kv.NewProfileRepository(store),
		clk,
	)
	return NewPayrollService(kv.NewSalaryRepository(store), directory, clk)
}

func TestPayrollService_SetBaseSalary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP001", BaseSalary: amount(85000)})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", resp.EmployeeName)
	assert.True(t, decimal.NewFromInt(71210).Equal(resp.NetSalary))

	got, err := svc.GetSalary(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(28990).Equal(got.TotalDeductions))
}

func TestPayrollService_SetBaseSalaryErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP001", BaseSalary: amount(-1)})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP999", BaseSalary: amount(1000)})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.GetSalary(ctx, "EMP004")
	assert.ErrorIs(t, err, payroll.ErrSalaryNotFound)
}

func TestPayrollService_SetBaseSalaryRequiresAmount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP001", BaseSalary: amount(85000)})
	require.NoError(t, err)

	for _, body := range []string{`{}`, `{"baseSalary": 90000}`, `{"base_salary": null}`} {
		var req payroll.SetBaseSalaryRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		req.EmployeeID = "EMP001"

		_, err := svc.SetBaseSalary(ctx, req)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, body)
		assert.Equal(t, "base_salary is required", verrs.ToMap()["base_salary"])
	}

	got, err := svc.GetSalary(ctx, "EMP001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(85000).Equal(got.BaseSalary))
	assert.True(t, decimal.NewFromInt(71210).Equal(got.NetSalary))
}

func TestPayrollService_SeedDefaultsAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.SeedDefaults(ctx, fixtures.DefaultSalaries()))

	summary, err := svc.ListSalaries(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Salaries, 5)
	assert.Empty(t, summary.Unconfigured)
	assert.Equal(t, "Jane Smith", summary.Salaries[1].EmployeeName)

	// 71210 + 100120 + 62950 + 75340 + 79470
	assert.True(t, decimal.NewFromInt(389090).Equal(summary.TotalPayroll), summary.TotalPayroll.String())

	total, err := svc.TotalPayroll(ctx)
	require.NoError(t, err)
	assert.True(t, summary.TotalPayroll.Equal(total))
}

func TestPayrollService_SeedDefaultsKeepsExisting(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP001", BaseSalary: amount(50000)})
	require.NoError(t, err)
	require.NoError(t, svc.SeedDefaults(ctx, fixtures.DefaultSalaries()))

	summary, err := svc.ListSalaries(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Salaries, 1)
	assert.True(t, decimal.NewFromInt(50000).Equal(summary.Salaries[0].BaseSalary))
	assert.Equal(t, []string{"EMP002", "EMP003", "EMP004", "EMP005"}, summary.Unconfigured)
}

func TestPayrollService_WritePayslip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.SetBaseSalary(ctx, payroll.SetBaseSalaryRequest{EmployeeID: "EMP001", BaseSalary: amount(85000)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.WritePayslip(ctx, "EMP001", &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	buf.Reset()
	err = svc.WritePayslip(ctx, "EMP004", &buf)
	assert.ErrorIs(t, err, payroll.ErrSalaryNotFound)
	assert.Zero(t, buf.Len())
}
