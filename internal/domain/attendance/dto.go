package attendance

import (
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckRequest identifies one check-in or check-out event.
type CheckRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidClock(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RangeFilter struct {
	EmployeeID string
	From       string
	To         string
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(f.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be in YYYY-MM-DD format"})
	}
	to, okTo := validator.IsValidDate(f.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be in YYYY-MM-DD format"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     Status  `json:"status"`
	// Recorded is false for the synthesized Absent default.
	Recorded bool `json:"recorded"`
}

type HistoryEntry struct {
	RecordResponse
	HoursWorked string `json:"hours_worked"`
}

type WeekResponse struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Records []RecordResponse `json:"records"`
}

// RollEntry is one employee's line in the admin daily attendance roll.
type RollEntry struct {
	RecordResponse
	Name       string `json:"name"`
	Department string `json:"department"`
}

type DailyRollResponse struct {
	Date    string      `json:"date"`
	Present int         `json:"present"`
	Absent  int         `json:"absent"`
	Entries []RollEntry `json:"entries"`
}

func ToResponse(employeeID string, r Record, recorded bool) RecordResponse {
	return RecordResponse{
		EmployeeID: employeeID,
		Date:       r.Date,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     r.Status,
		Recorded:   recorded,
	}
}
