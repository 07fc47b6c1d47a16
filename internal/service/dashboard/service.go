package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	directory  employee.Reader
	attendance attendance.AttendanceService
	leave      leave.LeaveService
	payroll    payroll.PayrollService
	clock      clock.Clock
}

func NewDashboardService(
	directory employee.Reader,
	attendanceService attendance.AttendanceService,
	leaveService leave.LeaveService,
	payrollService payroll.PayrollService,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		directory:  directory,
		attendance: attendanceService,
		leave:      leaveService,
		payroll:    payrollService,
		clock:      clk,
	}
}

// AdminStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	stats := dashboard.AdminStats{Date: clock.Today(s.clock)}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Daily roll gives both headcount and presence
	g.Go(func() error {
		roll, err := s.attendance.DailyRoll(gCtx, stats.Date)
		if err != nil {
			return fmt.Errorf("daily roll: %w", err)
		}
		stats.TotalEmployees = len(roll.Entries)
		stats.PresentToday = roll.Present
		return nil
	})

	// 2. Pending leave requests across the company
	g.Go(func() error {
		count, err := s.leave.CountPending(gCtx, "")
		if err != nil {
			return fmt.Errorf("pending leaves: %w", err)
		}
		stats.PendingLeaves = count
		return nil
	})

	// 3. Payroll total
	g.Go(func() error {
		total, err := s.payroll.TotalPayroll(gCtx)
		if err != nil {
			return fmt.Errorf("total payroll: %w", err)
		}
		stats.TotalPayroll = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminStats{}, err
	}
	return stats, nil
}

// EmployeeSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeSummary(ctx context.Context, employeeID string) (dashboard.EmployeeSummary, error) {
	emp, err := s.directory.Get(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	summary := dashboard.EmployeeSummary{
		EmployeeID:      emp.EmployeeID,
		Name:            emp.Name,
		NeedsOnboarding: emp.NeedsOnboarding,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		today, err := s.attendance.Today(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("today's attendance: %w", err)
		}
		summary.Today = today
		return nil
	})

	g.Go(func() error {
		count, err := s.leave.CountPending(gCtx, employeeID)
		if err != nil {
			return fmt.Errorf("pending leaves: %w", err)
		}
		summary.PendingLeaves = count
		return nil
	})

	// A missing salary leaves NetSalary nil.
	g.Go(func() error {
		salary, err := s.payroll.GetSalary(gCtx, employeeID)
		if errors.Is(err, payroll.ErrSalaryNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("salary: %w", err)
		}
		summary.NetSalary = &salary.NetSalary
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeSummary{}, err
	}
	return summary, nil
}
