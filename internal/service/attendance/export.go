package attendance

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const rollSheet = "Attendance"

var rollHeader = []string{"Employee ID", "Name", "Department", "Date", "Check In", "Check Out", "Status"}

// ExportDailyRoll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportDailyRoll(ctx context.Context, date string, w io.Writer) error {
	roll, err := s.DailyRoll(ctx, date)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rollSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, title := range rollHeader {
		if err := setCell(f, col+1, 1, title); err != nil {
			return err
		}
	}
	for i, entry := range roll.Entries {
		row := i + 2
		values := []string{
			entry.EmployeeID,
			entry.Name,
			entry.Department,
			entry.Date,
			orDash(entry.CheckIn),
			orDash(entry.CheckOut),
			string(entry.Status),
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell %d,%d: %w", col, row, err)
	}
	return f.SetCellValue(rollSheet, cell, value)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
