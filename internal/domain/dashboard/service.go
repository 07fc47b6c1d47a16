package dashboard

import "context"

type DashboardService interface {
	AdminStats(ctx context.Context) (AdminStats, error)
	EmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error)
}
