package dashboard

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// AdminStats backs the administrator landing page.
type AdminStats struct {
	Date           string          `json:"date"`
	TotalEmployees int             `json:"total_employees"`
	PresentToday   int             `json:"present_today"`
	PendingLeaves  int             `json:"pending_leaves"`
	TotalPayroll   decimal.Decimal `json:"total_payroll"`
}

// EmployeeSummary backs an employee's landing page.
type EmployeeSummary struct {
	EmployeeID      string                    `json:"employee_id"`
	Name            string                    `json:"name"`
	NeedsOnboarding bool                      `json:"needs_onboarding"`
	Today           attendance.RecordResponse `json:"today"`
	PendingLeaves   int                       `json:"pending_leaves"`
	// NetSalary is nil until a base salary is configured.
	NetSalary *decimal.Decimal `json:"net_salary"`
}
