package calendar

import (
	"strconv"

	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

const (
	// MinMonth is January.
	MinMonth = 1
	// MaxMonth is December.
	MaxMonth = 12
)

// ErrMonthIsNotConstructed is returned when validating a zero-value Month.
var ErrMonthIsNotConstructed = errs.NewValueIsRequiredError(
	"month must be created via NewMonth or ParseMonth")

// Month is a month of the year in [MinMonth..MaxMonth], January = 1.
type Month struct {
	value int
	guard guard.ConstructorGuard
}

// NewMonth creates a Month from n.
//
// Returns:
//   - Month: a valid month
//   - error: ValueIsOutOfRangeError if n is outside [MinMonth..MaxMonth]
//
// Example:
//
//	m, err := NewMonth(10)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(m) // Output: 10
func NewMonth(n int) (Month, error) {
	if err := bounded.Check("month", n, MinMonth, MaxMonth); err != nil {
		return Month{}, err
	}
	return monthOf(n), nil
}

// ParseMonth parses a decimal month. Leading zeros are accepted, so "02" and
// "2" are the same month.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinMonth..MaxMonth]
func ParseMonth(s string) (Month, error) {
	n, err := bounded.ParseBounded("month", s, MinMonth, MaxMonth)
	if err != nil {
		return Month{}, err
	}
	return monthOf(n), nil
}

// monthOf skips the range check; callers guarantee n is in range.
func monthOf(n int) Month {
	return Month{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrMonthIsNotConstructed for a Month that was not built by NewMonth
// or ParseMonth.
func (m Month) Validate() error {
	return m.guard.Validate(ErrMonthIsNotConstructed)
}

// Value returns the month as an int in [MinMonth..MaxMonth].
func (m Month) Value() int {
	return m.value
}

// String returns the plain decimal form without padding.
func (m Month) String() string {
	return strconv.Itoa(m.value)
}

// Compare returns -1, 0 or +1 as m is before, equal to or after other.
func (m Month) Compare(other Month) int {
	return compareInts(m.value, other.value)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
