package clock

import (
	"cmp"
	"strconv"

	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

const (
	// MinHour and MaxHour bound an Hour.
	MinHour = 0
	MaxHour = 23
	// MinMinute and MaxMinute bound a Minute.
	MinMinute = 0
	MaxMinute = 59
	// MinSecond and MaxSecond bound a Second.
	MinSecond = 0
	MaxSecond = 59
)

var (
	// ErrHourIsNotConstructed is returned when validating a zero-value Hour.
	ErrHourIsNotConstructed   = errs.NewValueIsRequiredError("hour must be created via NewHour or ParseHour")
	// ErrMinuteIsNotConstructed is returned when validating a zero-value Minute.
	ErrMinuteIsNotConstructed = errs.NewValueIsRequiredError("minute must be created via NewMinute or ParseMinute")
	// ErrSecondIsNotConstructed is returned when validating a zero-value Second.
	ErrSecondIsNotConstructed = errs.NewValueIsRequiredError("second must be created via NewSecond or ParseSecond")
)

// Hour is an hour of the day in [0..23]. Hour 0 is valid, so an unconstructed
// Hour is told apart only by Validate.
type Hour struct {
	value int
	guard guard.ConstructorGuard
}

// NewHour creates an Hour from n.
//
// Returns:
//   - Hour: a valid hour
//   - error: ValueIsOutOfRangeError if n is outside [MinHour..MaxHour]
//
// Example:
//
//	h, err := NewHour(9)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(h) // Output: 9
func NewHour(n int) (Hour, error) {
	if err := bounded.Check("hour", n, MinHour, MaxHour); err != nil {
		return Hour{}, err
	}
	return hourOf(n), nil
}

// ParseHour parses a decimal hour. Leading zeros are accepted, so "09" and
// "9" are the same hour.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinHour..MaxHour]
func ParseHour(s string) (Hour, error) {
	n, err := bounded.ParseBounded("hour", s, MinHour, MaxHour)
	if err != nil {
		return Hour{}, err
	}
	return hourOf(n), nil
}

func hourOf(n int) Hour {
	return Hour{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrHourIsNotConstructed for an Hour that was not built by NewHour
// or ParseHour.
func (h Hour) Validate() error {
	return h.guard.Validate(ErrHourIsNotConstructed)
}

// Value returns the hour as an int in [MinHour..MaxHour].
func (h Hour) Value() int {
	return h.value
}

// String returns the plain decimal form without padding.
func (h Hour) String() string {
	return strconv.Itoa(h.value)
}

// Compare returns -1, 0 or +1 as h is before, equal to or after other.
func (h Hour) Compare(other Hour) int {
	return cmp.Compare(h.value, other.value)
}

// Minute is a minute of the hour in [0..59].
type Minute struct {
	value int
	guard guard.ConstructorGuard
}

// NewMinute creates a Minute from n.
//
// Returns:
//   - Minute: a valid minute
//   - error: ValueIsOutOfRangeError if n is outside [MinMinute..MaxMinute]
func NewMinute(n int) (Minute, error) {
	if err := bounded.Check("minute", n, MinMinute, MaxMinute); err != nil {
		return Minute{}, err
	}
	return minuteOf(n), nil
}

// ParseMinute parses a decimal minute. Leading zeros are accepted, so "07" and
// "7" are the same minute.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinMinute..MaxMinute]
func ParseMinute(s string) (Minute, error) {
	n, err := bounded.ParseBounded("minute", s, MinMinute, MaxMinute)
	if err != nil {
		return Minute{}, err
	}
	return minuteOf(n), nil
}

func minuteOf(n int) Minute {
	return Minute{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrMinuteIsNotConstructed for a Minute that was not built by NewMinute
// or ParseMinute.
func (m Minute) Validate() error {
	return m.guard.Validate(ErrMinuteIsNotConstructed)
}

// Value returns the minute as an int in [MinMinute..MaxMinute].
func (m Minute) Value() int {
	return m.value
}

// String returns the plain decimal form without padding.
func (m Minute) String() string {
	return strconv.Itoa(m.value)
}

// Compare returns -1, 0 or +1 as m is before, equal to or after other.
func (m Minute) Compare(other Minute) int {
	return cmp.Compare(m.value, other.value)
}

// Second is a second of the minute in [0..59]. Leap seconds are not represented.
type Second struct {
	value int
	guard guard.ConstructorGuard
}

// NewSecond creates a Second from n.
//
// Returns:
//   - Second: a valid second
//   - error: ValueIsOutOfRangeError if n is outside [MinSecond..MaxSecond]
func NewSecond(n int) (Second, error) {
	if err := bounded.Check("second", n, MinSecond, MaxSecond); err != nil {
		return Second{}, err
	}
	return secondOf(n), nil
}

// ParseSecond parses a decimal second. Leading zeros are accepted, so "05" and
// "5" are the same second.
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is outside [MinSecond..MaxSecond]
func ParseSecond(s string) (Second, error) {
	n, err := bounded.ParseBounded("second", s, MinSecond, MaxSecond)
	if err != nil {
		return Second{}, err
	}
	return secondOf(n), nil
}

func secondOf(n int) Second {
	return Second{value: n, guard: guard.NewConstructorGuard()}
}

// Validate reports ErrSecondIsNotConstructed for a Second that was not built by NewSecond
// or ParseSecond.
func (s Second) Validate() error {
	return s.guard.Validate(ErrSecondIsNotConstructed)
}

// Value returns the second as an int in [MinSecond..MaxSecond].
func (s Second) Value() int {
	return s.value
}

// String returns the plain decimal form without padding.
func (s Second) String() string {
	return strconv.Itoa(s.value)
}

// Compare returns -1, 0 or +1 as s is before, equal to or after other.
func (s Second) Compare(other Second) int {
	return cmp.Compare(s.value, other.value)
}
