package attendance

import (
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-day"
	StatusLeave   Status = "Leave"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Record is one employee's attendance for one calendar day. A record exists
// in storage only once someone interacted with that day.
type Record struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Status   Status  `json:"status"`
}

// Validate checks the fixed field set of a stored record. A checkout-only
// record is accepted: CheckOut does not require a prior CheckIn.
func (r Record) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidClock(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "checkIn", Message: "checkIn must be HH:MM or HH:MM:SS"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClock(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "checkOut", Message: "checkOut must be HH:MM or HH:MM:SS"})
		}
	}
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OrphanCheckOut reports a record that was checked out without a check-in.
func (r Record) OrphanCheckOut() bool {
	return r.CheckIn == nil && r.CheckOut != nil
}

// Project is the read-time view of a day: the stored record when there is one,
// otherwise a synthesized Absent record. The synthesized record is never saved.
func Project(date string, stored *Record) Record {
	if stored != nil {
		return *stored
	}
	return Record{Date: date, Status: StatusAbsent}
}

// HoursPlaceholder is reported when either bound of a day is missing.
const HoursPlaceholder = "-"

// HoursWorked is checkOut minus checkIn in hours, rounded to one decimal.
func HoursWorked(r Record) (string, error) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return HoursPlaceholder, nil
	}

	in, ok := validator.IsValidClock(*r.CheckIn)
	if !ok {
		return "", validator.Single("check_in", "malformed time "+*r.CheckIn)
	}
	out, ok := validator.IsValidClock(*r.CheckOut)
	if !ok {
		return "", validator.Single("check_out", "malformed time "+*r.CheckOut)
	}
	if out.Before(in) {
		return "", ErrCheckOutBeforeCheckIn
	}

	hours := decimal.NewFromFloat(out.Sub(in).Hours())
	return hours.Round(1).StringFixed(1), nil
}

// WeekBounds returns the first and last date of the calendar week holding now,
// with weeks starting on start.
func WeekBounds(now time.Time, start time.Weekday) (from, to string) {
	offset := (int(now.Weekday()) - int(start) + 7) % 7
	first := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 0, 6)
	return first.Format(validator.DateLayout), last.Format(validator.DateLayout)
}
