package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	repo      attendance.Repository
	directory employee.Reader
	clock     clock.Clock
	weekStart time.Weekday
}

func NewAttendanceService(
	repo attendance.Repository,
	directory employee.Reader,
	clk clock.Clock,
	weekStart time.Weekday,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		repo:      repo,
		directory: directory,
		clock:     clk,
		weekStart: weekStart,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	if _, err := s.directory.Get(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	stored, err := s.findDay(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	record := attendance.Record{Date: req.Date}
	if stored != nil {
		record = *stored
	}
	checkIn := req.Time
	record.CheckIn = &checkIn
	record.Status = attendance.StatusPresent

	if err := s.repo.Save(ctx, req.EmployeeID, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	slog.Info("Checked in", "employee_id", req.EmployeeID, "date", req.Date, "time", req.Time, "overwrote", stored != nil)
	return attendance.ToResponse(req.EmployeeID, record, true), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	if _, err := s.directory.Get(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	stored, err := s.findDay(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// No check-in that day still writes a checkout-only record.
	record := attendance.Record{Date: req.Date, Status: attendance.StatusPresent}
	if stored != nil {
		record = *stored
	}
	checkOut := req.Time
	record.CheckOut = &checkOut

	if err := s.repo.Save(ctx, req.EmployeeID, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	slog.Info("Checked out", "employee_id", req.EmployeeID, "date", req.Date, "time", req.Time, "orphan", record.OrphanCheckOut())
	return attendance.ToResponse(req.EmployeeID, record, true), nil
}

// GetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, employeeID, date string) (attendance.RecordResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.RecordResponse{}, validator.Single("date", "date must be in YYYY-MM-DD format")
	}
	if _, err := s.directory.Get(ctx, employeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	stored, err := s.findDay(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(employeeID, attendance.Project(date, stored), stored != nil), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	return s.GetDay(ctx, employeeID, clock.Today(s.clock))
}

// ListRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.directory.Get(ctx, filter.EmployeeID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListByEmployee(ctx, filter.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	// Dates are YYYY-MM-DD so string order is date order.
	result := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		if r.Date < filter.From || r.Date > filter.To {
			continue
		}
		result = append(result, attendance.ToResponse(filter.EmployeeID, r, true))
	}
	return result, nil
}

// Week implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Week(ctx context.Context, employeeID string) (attendance.WeekResponse, error) {
	from, to := attendance.WeekBounds(s.clock.Now(), s.weekStart)

	records, err := s.ListRange(ctx, attendance.RangeFilter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		return attendance.WeekResponse{}, err
	}
	return attendance.WeekResponse{From: from, To: to, Records: records}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string) ([]attendance.HistoryEntry, error) {
	if _, err := s.directory.Get(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	history := make([]attendance.HistoryEntry, 0, len(records))
	for _, r := range records {
		hours, err := attendance.HoursWorked(r)
		if errors.Is(err, attendance.ErrCheckOutBeforeCheckIn) {
			slog.Warn("Check-out precedes check-in", "employee_id", employeeID, "date", r.Date)
			hours = attendance.HoursPlaceholder
		} else if err != nil {
			return nil, err
		}
		history = append(history, attendance.HistoryEntry{
			RecordResponse: attendance.ToResponse(employeeID, r, true),
			HoursWorked:    hours,
		})
	}
	return history, nil
}

// DailyRoll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailyRoll(ctx context.Context, date string) (attendance.DailyRollResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DailyRollResponse{}, validator.Single("date", "date must be in YYYY-MM-DD format")
	}

	employees, err := s.directory.List(ctx)
	if err != nil {
		return attendance.DailyRollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	roll := attendance.DailyRollResponse{Date: date, Entries: make([]attendance.RollEntry, 0, len(employees))}
	for _, e := range employees {
		stored, err := s.findDay(ctx, e.EmployeeID, date)
		if err != nil {
			return attendance.DailyRollResponse{}, err
		}
		record := attendance.Project(date, stored)
		if record.Status == attendance.StatusAbsent {
			roll.Absent++
		} else {
			roll.Present++
		}
		roll.Entries = append(roll.Entries, attendance.RollEntry{
			RecordResponse: attendance.ToResponse(e.EmployeeID, record, stored != nil),
			Name:           e.Name,
			Department:     e.Department,
		})
	}
	return roll, nil
}

func (s *AttendanceServiceImpl) findDay(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	for i := range records {
		if records[i].Date == date {
			return &records[i], nil
		}
	}
	return nil, nil
}
