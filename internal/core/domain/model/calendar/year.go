package calendar

import (
	"errors"
	"math"
	"strconv"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

var (
	// ErrYearIsNotConstructed is returned when using a zero Year.
	ErrYearIsNotConstructed = errs.NewValueIsRequiredError(
		"year must be created via NewYear, ParseYear or ParseYearIn")

	errNoYearZero = errors.New("proleptic numbering has no year zero")
)

// Year is a year counted in a specific calendar System.
//
// Numbering is proleptic and skips zero: the year before 1 is -1. A Year is
// immutable; Add, Subtract, Increment and Decrement return new values, and stepping
// across the missing year zero lands on 1 or -1.
//
// Years from different systems have no defined order; Compare returns
// errs.ErrValuesAreIncomparable for them.
//
// Example:
//
//	y, err := calendar.NewYear(calendar.Gregorian, -1)
//	if err != nil {
//	    // handle error
//	}
//	next, _ := y.Increment() // Gregorian year 1
type Year struct { //nolint:recvcheck //using for validation
	system    System
	magnitude int64
	guard     guard.ConstructorGuard
}

// NewYear creates a Year in system with the given signed magnitude.
//
// Returns:
//   - ValueIsInvalidError if system is neither Julian nor Gregorian
//   - ValueIsOutOfRangeError if magnitude is 0
func NewYear(system System, magnitude int64) (Year, error) {
	y := Year{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(y.setSystem(system), y.setMagnitude(magnitude)); err != nil {
		return Year{}, err
	}

	return y, nil
}

// ParseYear parses a signed decimal magnitude as a Gregorian year.
func ParseYear(s string) (Year, error) {
	return ParseYearIn(Gregorian, s)
}

// ParseYearIn parses a signed decimal magnitude as a year of system.
func ParseYearIn(system System, s string) (Year, error) {
	n, err := bounded.ParseInt("year", s)
	if err != nil {
		return Year{}, err
	}
	return NewYear(system, n)
}

// Validate returns ErrYearIsNotConstructed for a Year not built by a constructor.
func (y Year) Validate() error {
	return y.guard.Validate(ErrYearIsNotConstructed)
}

// System returns the calendar system the year is counted in.
func (y Year) System() System {
	return y.system
}

// Magnitude returns the signed year number. It is never 0.
func (y Year) Magnitude() int64 {
	return y.magnitude
}

// String returns the signed decimal magnitude, e.g. "-44" or "2024".
func (y Year) String() string {
	return strconv.FormatInt(y.magnitude, 10)
}

// Calendar returns the calendar that y is counted in.
func (y Year) Calendar() Calendar {
	if y.system == Julian {
		return JulianCalendar{}
	}
	return GregorianCalendar{}
}

// IsLeapYear applies the leap rule of the year's own calendar.
func (y Year) IsLeapYear() bool {
	return y.Calendar().IsLeapYear(y)
}

// DaysInMonth returns the length of month in y.
func (y Year) DaysInMonth(month Month) int {
	return y.Calendar().DaysInMonth(y, month)
}

// DaysWithin returns the number of days in the year. The Gregorian year 1582 is
// 355 days long because ten days were dropped at the reform.
func (y Year) DaysWithin() int {
	if y.system == Gregorian && y.magnitude == gregorianReformYear {
		return 365 - gregorianReformGap
	}
	return y.Calendar().DaysInYear(y)
}

// WeeksWithin always returns 0.
// TODO: count ISO-8601 weeks once week-of-year numbering is modeled.
func (y Year) WeeksWithin() int {
	return 0
}

// Compare orders two years of the same calendar system by magnitude.
//
// Returns:
//   - -1, 0 or +1 for years in the same system
//   - ValuesAreIncomparableError if the systems differ
func (y Year) Compare(other Year) (int, error) {
	if y.system != other.system {
		return 0, errs.NewValuesAreIncomparableError("calendar system", y.system, other.system)
	}
	switch {
	case y.magnitude < other.magnitude:
		return -1, nil
	case y.magnitude > other.magnitude:
		return 1, nil
	default:
		return 0, nil
	}
}

// Add moves the year forward. A result of 0 is pushed on to 1.
func (y Year) Add(years quantity.Years) (Year, error) {
	m, ok := bounded.Add(y.magnitude, years.Value())
	if !ok {
		return Year{}, errs.NewArithmeticOverflowError("year", "+", y.magnitude, years.Value())
	}
	if m == 0 {
		m = 1
	}
	return y.withMagnitude(m), nil
}

// Subtract moves the year back. A result of 0 is pushed on to -1.
func (y Year) Subtract(years quantity.Years) (Year, error) {
	m, ok := bounded.Sub(y.magnitude, years.Value())
	if !ok {
		return Year{}, errs.NewArithmeticUnderflowError("year", "-", y.magnitude, years.Value())
	}
	if m == 0 {
		m = -1
	}
	return y.withMagnitude(m), nil
}

// Increment returns the following year; -1 is followed by 1.
func (y Year) Increment() (Year, error) {
	return y.Add(oneYear)
}

// Decrement returns the preceding year; 1 is preceded by -1.
func (y Year) Decrement() (Year, error) {
	return y.Subtract(oneYear)
}

var oneYear, _ = quantity.NewYears(1)

func (y Year) withMagnitude(m int64) Year {
	return Year{system: y.system, magnitude: m, guard: guard.NewConstructorGuard()}
}

func (y *Year) setSystem(system System) error {
	if err := system.Validate(); err != nil {
		return err
	}

	y.system = system
	return nil
}

func (y *Year) setMagnitude(magnitude int64) error {
	if magnitude == 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"year", magnitude, int64(math.MinInt64), int64(math.MaxInt64), errNoYearZero)
	}

	y.magnitude = magnitude
	return nil
}
