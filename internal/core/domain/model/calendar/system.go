package calendar

import (
	"fmt"
	"strings"

	"calendar/internal/pkg/errs"
)

// System identifies the calendar system a Year is counted in.
type System int

const (
	// UnknownSystem is the zero value and is never valid.
	UnknownSystem System = iota
	// Julian is the proleptic Julian calendar: every fourth year is a leap year.
	Julian
	// Gregorian is the proleptic Gregorian calendar from 1582 onward and the
	// Julian rule before that.
	Gregorian
)

// ParseSystem accepts "julian" or "gregorian" in any letter case.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "julian":
		return Julian, nil
	case "gregorian":
		return Gregorian, nil
	default:
		return UnknownSystem, errs.NewValueIsInvalidErrorWithCause(
			"calendar system",
			fmt.Errorf("%q is not one of julian, gregorian", s),
		)
	}
}

// Validate returns an error unless s is Julian or Gregorian.
func (s System) Validate() error {
	if s != Julian && s != Gregorian {
		return errs.NewValueIsInvalidErrorWithCause(
			"calendar system",
			fmt.Errorf("%d is not a valid calendar system", s),
		)
	}
	return nil
}

// String returns "Julian", "Gregorian" or "Unknown".
func (s System) String() string {
	switch s {
	case Julian:
		return "Julian"
	case Gregorian:
		return "Gregorian"
	default:
		return "Unknown"
	}
}
