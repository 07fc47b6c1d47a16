package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock in Location (UTC when nil).
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant. Used by tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today formats the clock's current date as YYYY-MM-DD.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}

// TimeOfDay formats the clock's current time as HH:MM:SS.
func TimeOfDay(c Clock) string {
	return c.Now().Format("15:04:05")
}
