package booking

import (
	"time"

	"reservation-engine/internal/pkg/errs"
)

const maxNights = 30

var (
	ErrInvalidStay   = errs.Mark(errs.New("check-out must be after check-in"), errs.ErrDomainValidation)
	ErrStayInPast    = errs.Mark(errs.New("check-in cannot be in the past"), errs.ErrDomainValidation)
	ErrStayTooLong   = errs.Mark(errs.New("stay exceeds the maximum number of nights"), errs.ErrDomainValidation)
	ErrInvalidGuests = errs.Mark(errs.New("guests must be positive"), errs.ErrDomainValidation)
)

// Stay is a half-open date range [checkIn, checkOut) at day granularity.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut, now time.Time) (Stay, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	if in.Before(truncateToDate(now)) {
		return Stay{}, ErrStayInPast
	}
	s := Stay{checkIn: in, checkOut: out}
	if s.Nights() > maxNights {
		return Stay{}, ErrStayTooLong
	}
	return s, nil
}

func ReconstructStay(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
