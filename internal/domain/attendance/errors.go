package attendance

import "errors"

var (
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is before check-in time")
)
