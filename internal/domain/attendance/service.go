package attendance

import (
	"context"
	"io"
)

type AttendanceService interface {
	// CheckIn creates the day's record or overwrites its check-in time; status becomes Present.
	CheckIn(ctx context.Context, req CheckRequest) (RecordResponse, error)

	// CheckOut sets the day's check-out time, writing a checkout-only record if none exists.
	CheckOut(ctx context.Context, req CheckRequest) (RecordResponse, error)

	// GetDay returns the stored record or a synthesized Absent record.
	GetDay(ctx context.Context, employeeID, date string) (RecordResponse, error)

	// Today is GetDay for the current date.
	Today(ctx context.Context, employeeID string) (RecordResponse, error)

	// ListRange returns stored records between two dates inclusive, newest first.
	ListRange(ctx context.Context, filter RangeFilter) ([]RecordResponse, error)

	// Week returns stored records in the calendar week containing now.
	Week(ctx context.Context, employeeID string) (WeekResponse, error)

	// History returns every stored record newest first, with hours worked.
	History(ctx context.Context, employeeID string) ([]HistoryEntry, error)

	// DailyRoll projects every directory employee's record for date.
	DailyRoll(ctx context.Context, date string) (DailyRollResponse, error)

	// ExportDailyRoll writes the daily roll as an XLSX workbook.
	ExportDailyRoll(ctx context.Context, date string, w io.Writer) error
}
