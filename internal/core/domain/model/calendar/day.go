package calendar

import (
	"strconv"

	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// MinDay and MaxDay bound a Day in any month.
const (
	MinDay = 1
	MaxDay = 31
)

// ErrDayIsNotConstructed is returned when validating a zero-value Day.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"day must be created via NewDay or ParseDay")

// Day is a day of the month in [MinDay..MaxDay]. The month-specific upper bound is
// enforced by MonthDay, not here.
type Day struct {
	value int
	guard guard.ConstructorGuard
}

// NewDay creates a Day from n.
//
// Returns:
//   - Day: a valid day
//   - error: ValueIsOutOfRangeError if n is outside [MinDay..MaxDay]
//
// Example:
//
//	d, err := NewDay(13)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(d) // Output: 13
func NewDay(n int) (Day, error) {
	if err := bounded.Check("day", n, MinDay, MaxDay); err != nil {
		return Day{}, err
	}
	return dayOf(n), nil
}

// ParseDay parses a decimal day. Leading zeros are accepted, so "01" and
// "1" are the same day.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinDay..MaxDay]
func ParseDay(s string) (Day, error) {
	n, err := bounded.ParseBounded("day", s, MinDay, MaxDay)
	if err != nil {
		return Day{}, err
	}
	return dayOf(n), nil
}

func dayOf(n int) Day {
	return Day{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrDayIsNotConstructed for a Day that was not built by NewDay
// or ParseDay.
func (d Day) Validate() error {
	return d.guard.Validate(ErrDayIsNotConstructed)
}

// Value returns the day as an int in [MinDay..MaxDay].
func (d Day) Value() int {
	return d.value
}

// String returns the plain decimal form without padding.
func (d Day) String() string {
	return strconv.Itoa(d.value)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Day) Compare(other Day) int {
	return compareInts(d.value, other.value)
}
