package payroll

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

// WritePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) WritePayslip(ctx context.Context, employeeID string, w io.Writer) error {
	salary, err := s.GetSalary(ctx, employeeID)
	if err != nil {
		return err
	}
	period := s.clock.Now().Format("January 2006")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+salary.EmployeeID+" "+period, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", salary.EmployeeName, salary.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", salary.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)

	writeSection(pdf, "Earnings", []payslipLine{
		{"Base salary", salary.BaseSalary},
		{"Allowances", salary.Allowances},
		{"Bonus", salary.Bonus},
		{"Total earnings", salary.TotalEarnings},
	})
	writeSection(pdf, "Deductions", []payslipLine{
		{"Tax", salary.Tax},
		{"Insurance", salary.Insurance},
		{"Retirement", salary.Retirement},
		{"Total deductions", salary.TotalDeductions},
	})

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(100, 9, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, salary.NetSalary.StringFixed(0), "T", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return nil
}

func writeSection(pdf *gofpdf.Fpdf, title string, lines []payslipLine) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(100, 7, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, l.amount.StringFixed(0), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}
