package clock

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	// SecondsPerDay is the length of one wraparound cycle of Time.
	SecondsPerDay = 24 * secondsPerHour
)

// ErrTimeIsNotConstructed is returned when using a zero Time.
var ErrTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"time must be created via NewTime, TimeOf or ParseTime")

// Time is a time of day (Hour, Minute, Second).
//
// Arithmetic wraps around midnight and never fails: 23:59:59 plus one second is
// 00:00:00, and 00:00:00 minus one hour is 23:00:00.
//
// Example:
//
//	t, err := clock.ParseTime("1:1")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(t) // Output: 01:01:00
type Time struct { //nolint:recvcheck //using for validation
	hour   Hour
	minute Minute
	second Second
	guard  guard.ConstructorGuard
}

// NewTime combines already validated parts.
func NewTime(hour Hour, minute Minute, second Second) (Time, error) {
	if err := errors.Join(hour.Validate(), minute.Validate(), second.Validate()); err != nil {
		return Time{}, err
	}
	return Time{hour: hour, minute: minute, second: second, guard: guard.NewConstructorGuard()}, nil
}

// TimeOf builds a Time from plain integers, reporting every field that is out of range.
func TimeOf(hour, minute, second int) (Time, error) {
	h, hErr := NewHour(hour)
	m, mErr := NewMinute(minute)
	s, sErr := NewSecond(second)
	if err := errors.Join(hErr, mErr, sErr); err != nil {
		return Time{}, err
	}
	return NewTime(h, m, s)
}

// ParseTime accepts "H", "H:M" or "H:M:S". Missing trailing fields are 0 and
// fields need no zero padding.
func ParseTime(s string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return Time{}, errs.NewValueIsInvalidErrorWithCause(
			"time", fmt.Errorf("%q has more than three fields", s))
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	h, hErr := ParseHour(parts[0])
	m, mErr := ParseMinute(parts[1])
	sec, sErr := ParseSecond(parts[2])
	if err := errors.Join(hErr, mErr, sErr); err != nil {
		return Time{}, err
	}
	return NewTime(h, m, sec)
}

// Midnight returns 00:00:00.
func Midnight() Time {
	return timeOfSeconds(0)
}

// Validate returns ErrTimeIsNotConstructed for a Time not built by a constructor.
func (t Time) Validate() error {
	return t.guard.Validate(ErrTimeIsNotConstructed)
}

// Hour returns the hour component.
func (t Time) Hour() Hour {
	return t.hour
}

// Minute returns the minute component.
func (t Time) Minute() Minute {
	return t.minute
}

// Second returns the second component.
func (t Time) Second() Second {
	return t.second
}

// String returns the zero-padded "HH:MM:SS" form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour.value, t.minute.value, t.second.value)
}

// SecondOfDay returns the number of seconds since midnight, in [0, 86400).
func (t Time) SecondOfDay() int64 {
	return int64(t.hour.value)*secondsPerHour + int64(t.minute.value)*secondsPerMinute + int64(t.second.value)
}

// Compare orders times within one day: -1, 0 or 1.
func (t Time) Compare(other Time) int {
	return cmp.Compare(t.SecondOfDay(), other.SecondOfDay())
}

// MarshalText encodes t in the "HH:MM:SS" form. A zero Time fails.
func (t Time) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts anything ParseTime does.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AddHours moves t forward by hours, wrapping every 24.
func (t Time) AddHours(hours quantity.Hours) Time {
	return t.shift(bounded.FloorMod(hours.Value(), 24) * secondsPerHour)
}

// AddMinutes moves t forward by minutes, carrying into the hour.
func (t Time) AddMinutes(minutes quantity.Minutes) Time {
	return t.shift(bounded.FloorMod(minutes.Value(), SecondsPerDay/secondsPerMinute) * secondsPerMinute)
}

// AddSeconds moves t forward by seconds, carrying into the minute.
func (t Time) AddSeconds(seconds quantity.Seconds) Time {
	return t.shift(bounded.FloorMod(seconds.Value(), SecondsPerDay))
}

// SubtractHours moves t back by hours, wrapping every 24.
func (t Time) SubtractHours(hours quantity.Hours) Time {
	return t.shift(-bounded.FloorMod(hours.Value(), 24) * secondsPerHour)
}

// SubtractMinutes moves t back by minutes, borrowing from the hour.
func (t Time) SubtractMinutes(minutes quantity.Minutes) Time {
	return t.shift(-bounded.FloorMod(minutes.Value(), SecondsPerDay/secondsPerMinute) * secondsPerMinute)
}

// SubtractSeconds moves t back by seconds, borrowing from the minute.
func (t Time) SubtractSeconds(seconds quantity.Seconds) Time {
	return t.shift(-bounded.FloorMod(seconds.Value(), SecondsPerDay))
}

// AddDuration moves t by d. Negative durations move it backwards.
func (t Time) AddDuration(d Duration) Time {
	return t.shift(d.secondsOfDay())
}

// SubtractDuration moves t back by d.
func (t Time) SubtractDuration(d Duration) Time {
	return t.shift(-d.secondsOfDay())
}

// IncrementHour steps one hour forward; 23 wraps to 0.
func (t Time) IncrementHour() Time {
	return t.shift(secondsPerHour)
}

// DecrementHour steps one hour back; 0 wraps to 23.
func (t Time) DecrementHour() Time {
	return t.shift(-secondsPerHour)
}

// IncrementMinute steps one minute forward; 59 wraps to 0 and carries into the hour.
func (t Time) IncrementMinute() Time {
	return t.shift(secondsPerMinute)
}

// DecrementMinute steps one minute back; 0 wraps to 59 and borrows from the hour.
func (t Time) DecrementMinute() Time {
	return t.shift(-secondsPerMinute)
}

// IncrementSecond steps one second forward; 59 wraps to 0 and carries into the minute.
func (t Time) IncrementSecond() Time {
	return t.shift(1)
}

// DecrementSecond steps one second back; 0 wraps to 59 and borrows from the minute.
func (t Time) DecrementSecond() Time {
	return t.shift(-1)
}

// shift moves t by delta seconds, |delta| < 2*SecondsPerDay.
func (t Time) shift(delta int64) Time {
	return timeOfSeconds(bounded.FloorMod(t.SecondOfDay()+delta, SecondsPerDay))
}

// timeOfSeconds expects sod in [0, SecondsPerDay).
func timeOfSeconds(sod int64) Time {
	return Time{
		hour:   hourOf(int(sod / secondsPerHour)),
		minute: minuteOf(int(sod % secondsPerHour / secondsPerMinute)),
		second: secondOf(int(sod % secondsPerMinute)),
		guard:  guard.NewConstructorGuard(),
	}
}
