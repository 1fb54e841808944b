package clock

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// ErrDurationIsNotConstructed is returned when using a zero Duration.
var ErrDurationIsNotConstructed = errs.NewValueIsRequiredError(
	"duration must be created via NewDuration or ParseDuration")

var durationPattern = regexp.MustCompile(`^PT(-?\d+)H(\d+)M(\d+)S$`)

// Duration is an elapsed time of hours, minutes and seconds.
//
// Hours are unbounded and may be negative; minutes and seconds are always kept in
// [0..59]. A Duration of -1 hour 30 minutes is therefore half an hour long and
// negative: PT-1H30M0S.
//
// Add and Subtract work field by field. Seconds are combined first, and any
// overflow past 59 (or borrow below 0) moves one minute; minutes then do the same
// against hours. Multiply, Divide and Modulo work on the total number of seconds.
//
// Example:
//
//	d, err := clock.NewDuration(0, 0, 60)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(d) // Output: PT0H1M0S
type Duration struct { //nolint:recvcheck //using for validation
	hours   int64
	minutes int
	seconds int
	guard   guard.ConstructorGuard
}

// NewDuration normalizes the fields: seconds of 60 or more carry into minutes and
// minutes of 60 or more carry into hours.
//
// Returns:
//   - ValueIsOutOfRangeError if minutes or seconds is negative
//   - ArithmeticError if the carried hours do not fit in an int64
func NewDuration(hours, minutes, seconds int64) (Duration, error) {
	if err := errors.Join(
		bounded.Check("minutes", minutes, 0, math.MaxInt64),
		bounded.Check("seconds", seconds, 0, math.MaxInt64),
	); err != nil {
		return Duration{}, err
	}
	return normalize("+", hours, minutes, seconds)
}

// ParseDuration accepts exactly "PT{h}H{m}M{s}S", where h may be negative.
func ParseDuration(s string) (Duration, error) {
	match := durationPattern.FindStringSubmatch(s)
	if match == nil {
		return Duration{}, errs.NewValueIsInvalidErrorWithCause(
			"duration", fmt.Errorf("%q is not in PT{h}H{m}M{s}S form", s))
	}

	fields := make([]int64, 0, 3)
	for _, raw := range match[1:] {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Duration{}, errs.NewValueIsInvalidErrorWithCause("duration", err)
		}
		fields = append(fields, n)
	}

	return NewDuration(fields[0], fields[1], fields[2])
}

// DurationOf converts a Time into the Duration elapsed since midnight.
func DurationOf(t Time) Duration {
	return durationOf(int64(t.hour.value), t.minute.value, t.second.value)
}

func durationOf(h int64, m, s int) Duration {
	return Duration{hours: h, minutes: m, seconds: s, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrDurationIsNotConstructed for a Duration not built by a constructor.
func (d Duration) Validate() error {
	return d.guard.Validate(ErrDurationIsNotConstructed)
}

// Hours returns the signed hours field.
func (d Duration) Hours() int64 {
	return d.hours
}

// Minutes returns the minutes field, always in [0, 59].
func (d Duration) Minutes() int {
	return d.minutes
}

// Seconds returns the seconds field, always in [0, 59].
func (d Duration) Seconds() int {
	return d.seconds
}

// IsNegative reports whether d is shorter than zero.
func (d Duration) IsNegative() bool {
	return d.hours < 0
}

// IsZero reports whether every field is 0.
func (d Duration) IsZero() bool {
	return d.hours == 0 && d.minutes == 0 && d.seconds == 0
}

// String returns the "PT{h}H{m}M{s}S" form, e.g. "PT-1H30M0S".
func (d Duration) String() string {
	return fmt.Sprintf("PT%dH%dM%dS", d.hours, d.minutes, d.seconds)
}

// Compare orders durations by length. Normalized fields make this lexicographic.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.hours != other.hours:
		return cmp.Compare(d.hours, other.hours)
	case d.minutes != other.minutes:
		return cmp.Compare(d.minutes, other.minutes)
	default:
		return cmp.Compare(d.seconds, other.seconds)
	}
}

// MarshalText encodes d with String. A zero Duration fails.
func (d Duration) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts anything ParseDuration does.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TotalSeconds returns the signed length of d in seconds.
func (d Duration) TotalSeconds() (int64, error) {
	h, ok := bounded.Mul(d.hours, secondsPerHour)
	if !ok {
		return 0, d.overflow("*", int64(secondsPerHour))
	}
	total, ok := bounded.Add(h, int64(d.minutes)*secondsPerMinute+int64(d.seconds))
	if !ok {
		return 0, d.overflow("+", int64(d.minutes)*secondsPerMinute+int64(d.seconds))
	}
	return total, nil
}

// Add carries per field: a seconds surplus adds one minute, a minutes surplus adds
// one hour.
//
// Returns:
//   - ArithmeticError (overflow or underflow, by the sign of other) if the hours do
//     not fit in an int64
func (d Duration) Add(other Duration) (Duration, error) {
	h, ok := bounded.Add(d.hours, other.hours)
	if !ok {
		if other.hours < 0 {
			return Duration{}, errs.NewArithmeticUnderflowError("duration", "+", d, other)
		}
		return Duration{}, errs.NewArithmeticOverflowError("duration", "+", d, other)
	}
	return normalize("+", h, int64(d.minutes+other.minutes), int64(d.seconds+other.seconds))
}

// Subtract borrows per field: a seconds deficit takes one minute, a minutes
// deficit takes one hour. Hours may end up negative.
//
// Returns:
//   - ArithmeticError (underflow, or overflow when other is negative) if the hours
//     do not fit in an int64
func (d Duration) Subtract(other Duration) (Duration, error) {
	h, ok := bounded.Sub(d.hours, other.hours)
	if !ok {
		if other.hours < 0 {
			return Duration{}, errs.NewArithmeticOverflowError("duration", "-", d, other)
		}
		return Duration{}, errs.NewArithmeticUnderflowError("duration", "-", d, other)
	}
	return normalize("-", h, int64(d.minutes-other.minutes), int64(d.seconds-other.seconds))
}

// AddHours is Add with a duration of hours.
func (d Duration) AddHours(hours quantity.Hours) (Duration, error) {
	return d.Add(durationOf(hours.Value(), 0, 0))
}

// AddMinutes is Add with a duration of minutes, carried into hours.
func (d Duration) AddMinutes(minutes quantity.Minutes) (Duration, error) {
	return d.Add(minutesDuration(minutes.Value()))
}

// AddSeconds is Add with a duration of seconds, carried into minutes and hours.
func (d Duration) AddSeconds(seconds quantity.Seconds) (Duration, error) {
	return d.Add(fromTotalSeconds(seconds.Value()))
}

// SubtractHours is Subtract with a duration of hours.
func (d Duration) SubtractHours(hours quantity.Hours) (Duration, error) {
	return d.Subtract(durationOf(hours.Value(), 0, 0))
}

// SubtractMinutes is Subtract with a duration of minutes.
func (d Duration) SubtractMinutes(minutes quantity.Minutes) (Duration, error) {
	return d.Subtract(minutesDuration(minutes.Value()))
}

// SubtractSeconds is Subtract with a duration of seconds.
func (d Duration) SubtractSeconds(seconds quantity.Seconds) (Duration, error) {
	return d.Subtract(fromTotalSeconds(seconds.Value()))
}

// Multiply scales d by k. k may be negative.
func (d Duration) Multiply(k int64) (Duration, error) {
	total, err := d.TotalSeconds()
	if err != nil {
		return Duration{}, err
	}
	product, ok := bounded.Mul(total, k)
	if !ok {
		return Duration{}, errs.NewArithmeticOverflowError("duration", "*", d, k)
	}
	return fromTotalSeconds(product), nil
}

// Divide returns floor(d/k) on a total-seconds basis, so PT10H10M10S / 3 is PT3H23M23S.
func (d Duration) Divide(k int64) (Duration, error) {
	total, err := d.totalForDivision(k)
	if err != nil {
		return Duration{}, err
	}
	if total == math.MinInt64 && k == -1 {
		return Duration{}, errs.NewArithmeticOverflowError("duration", "/", d, k)
	}
	return fromTotalSeconds(bounded.FloorDiv(total, k)), nil
}

// Modulo returns the remainder matching Divide.
func (d Duration) Modulo(k int64) (Duration, error) {
	total, err := d.totalForDivision(k)
	if err != nil {
		return Duration{}, err
	}
	if k == -1 {
		return durationOf(0, 0, 0), nil
	}
	return fromTotalSeconds(bounded.FloorMod(total, k)), nil
}

func (d Duration) totalForDivision(k int64) (int64, error) {
	if k == 0 {
		return 0, errs.NewDivisionByZeroError("duration", d)
	}
	return d.TotalSeconds()
}

// secondsOfDay is d reduced modulo one day, in [0, SecondsPerDay).
func (d Duration) secondsOfDay() int64 {
	return bounded.FloorMod(d.hours, 24)*secondsPerHour + int64(d.minutes)*secondsPerMinute + int64(d.seconds)
}

func (d Duration) overflow(op string, right any) error {
	if d.hours < 0 {
		return errs.NewArithmeticUnderflowError("duration", op, d, right)
	}
	return errs.NewArithmeticOverflowError("duration", op, d, right)
}

func minutesDuration(n int64) Duration {
	return durationOf(n/60, int(n%60), 0)
}

func fromTotalSeconds(total int64) Duration {
	rest := bounded.FloorMod(total, secondsPerHour)
	return durationOf(bounded.FloorDiv(total, secondsPerHour), int(rest/secondsPerMinute), int(rest%secondsPerMinute))
}

// normalize carries or borrows seconds into minutes and minutes into hours until
// both lie in [0..59]. op names the operation in any overflow error.
func normalize(op string, hours, minutes, seconds int64) (Duration, error) {
	m, ok := bounded.Add(minutes, bounded.FloorDiv(seconds, secondsPerMinute))
	if !ok {
		return Duration{}, errs.NewArithmeticOverflowError("minutes", op, minutes, seconds)
	}
	s := bounded.FloorMod(seconds, secondsPerMinute)

	carry := bounded.FloorDiv(m, 60)
	m = bounded.FloorMod(m, 60)

	h, ok := bounded.Add(hours, carry)
	if !ok {
		if carry < 0 {
			return Duration{}, errs.NewArithmeticUnderflowError("hours", op, hours, carry)
		}
		return Duration{}, errs.NewArithmeticOverflowError("hours", op, hours, carry)
	}
	return durationOf(h, int(m), int(s)), nil
}

