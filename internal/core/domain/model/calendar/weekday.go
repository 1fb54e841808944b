package calendar

import (
	"strconv"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// DayOfWeek names the seven weekdays, Monday = 1 through Sunday = 7.
type DayOfWeek int

const (
	// Monday is the first day of the week.
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayOfWeekNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String returns the English name, or "Unknown" outside Monday..Sunday.
func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayOfWeekNames[d]
}

const (
	// MinWeekday (Monday) and MaxWeekday (Sunday) bound a Weekday.
	MinWeekday = int(Monday)
	MaxWeekday = int(Sunday)
)

// ErrWeekdayIsNotConstructed is returned when validating a zero-value Weekday.
var ErrWeekdayIsNotConstructed = errs.NewValueIsRequiredError(
	"weekday must be created via NewWeekday, ParseWeekday or WeekdayOf")

// Weekday is a day of the week in [1..7] with Monday = 1.
//
// Unlike Time, a Weekday does not wrap: shifting Sunday forward by one day is an
// overflow error, and shifting Monday back is an underflow error.
type Weekday struct {
	value int
	guard guard.ConstructorGuard
}

// NewWeekday creates a Weekday from n.
//
// Returns:
//   - Weekday: a valid weekday
//   - error: ValueIsOutOfRangeError if n is outside [MinWeekday..MaxWeekday]
func NewWeekday(n int) (Weekday, error) {
	if err := bounded.Check("weekday", n, MinWeekday, MaxWeekday); err != nil {
		return Weekday{}, err
	}
	return weekdayOf(n), nil
}

// ParseWeekday parses a decimal weekday. Leading zeros are accepted, so "07" and
// "7" are the same weekday.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinWeekday..MaxWeekday]
func ParseWeekday(s string) (Weekday, error) {
	n, err := bounded.ParseBounded("weekday", s, MinWeekday, MaxWeekday)
	if err != nil {
		return Weekday{}, err
	}
	return weekdayOf(n), nil
}

// WeekdayOf converts a named day into a Weekday.
func WeekdayOf(d DayOfWeek) (Weekday, error) {
	return NewWeekday(int(d))
}

func weekdayOf(n int) Weekday {
	return Weekday{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrWeekdayIsNotConstructed for a Weekday that was not built by NewWeekday
// or ParseWeekday.
func (w Weekday) Validate() error {
	return w.guard.Validate(ErrWeekdayIsNotConstructed)
}

// Value returns the weekday as an int in [MinWeekday..MaxWeekday].
func (w Weekday) Value() int {
	return w.value
}

// DayOfWeek returns the weekday's name tag.
func (w Weekday) DayOfWeek() DayOfWeek {
	return DayOfWeek(w.value)
}

// Name returns the English weekday name, e.g. "Sunday".
func (w Weekday) Name() string {
	return w.DayOfWeek().String()
}

// String returns the decimal form, e.g. "7". Use Name for the weekday name.
func (w Weekday) String() string {
	return strconv.Itoa(w.value)
}

// Compare returns -1, 0 or +1 as w is before, equal to or after other.
func (w Weekday) Compare(other Weekday) int {
	return compareInts(w.value, other.value)
}

// Add moves the weekday forward by days. Passing Sunday is an overflow error.
func (w Weekday) Add(days quantity.Days) (Weekday, error) {
	n, ok := bounded.Add(int64(w.value), days.Value())
	if !ok || n > int64(MaxWeekday) {
		return Weekday{}, errs.NewArithmeticOverflowError("weekday", "+", w.value, days.Value())
	}
	return weekdayOf(int(n)), nil
}

// Subtract moves the weekday back by days. Passing Monday is an underflow error.
func (w Weekday) Subtract(days quantity.Days) (Weekday, error) {
	n := int64(w.value) - days.Value()
	if n < int64(MinWeekday) {
		return Weekday{}, errs.NewArithmeticUnderflowError("weekday", "-", w.value, days.Value())
	}
	return weekdayOf(int(n)), nil
}
