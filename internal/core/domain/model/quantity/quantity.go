package quantity

import (
	"math"
	"strconv"

	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via its New or Parse constructor")

type unit interface {
	name() string
}

type (
	days    struct{}
	months  struct{}
	years   struct{}
	hours   struct{}
	minutes struct{}
	seconds struct{}
)

func (days) name() string    { return "days" }
func (months) name() string  { return "months" }
func (years) name() string   { return "years" }
func (hours) name() string   { return "hours" }
func (minutes) name() string { return "minutes" }
func (seconds) name() string { return "seconds" }

// Quantity is a non-negative amount of the unit U.
type Quantity[U unit] struct {
	amount int64
	guard  guard.ConstructorGuard
}

// The delta units. Each is a distinct type, so Days cannot be passed where Months
// are expected.
type (
	// Days is a non-negative number of days.
	Days = Quantity[days]
	// Months is a non-negative number of months.
	Months = Quantity[months]
	// Years is a non-negative number of years.
	Years = Quantity[years]
	// Hours is a non-negative number of hours.
	Hours = Quantity[hours]
	// Minutes is a non-negative number of minutes.
	Minutes = Quantity[minutes]
	// Seconds is a non-negative number of seconds.
	Seconds = Quantity[seconds]
)

// NewDays creates a number of days.
//
// Returns:
//   - Days: n days
//   - error: ValueIsOutOfRangeError if n is negative
//
// Example:
//
//	week, err := quantity.NewDays(7)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(week.Value(), week.Unit()) // Output: 7 days
func NewDays(n int64) (Days, error) { return newQuantity[days](n) }

// NewMonths creates a number of months. A negative n is a ValueIsOutOfRangeError.
func NewMonths(n int64) (Months, error) { return newQuantity[months](n) }

// NewYears creates a number of years. A negative n is a ValueIsOutOfRangeError.
func NewYears(n int64) (Years, error) { return newQuantity[years](n) }

// NewHours creates a number of hours. A negative n is a ValueIsOutOfRangeError.
func NewHours(n int64) (Hours, error) { return newQuantity[hours](n) }

// NewMinutes creates a number of minutes. A negative n is a ValueIsOutOfRangeError.
func NewMinutes(n int64) (Minutes, error) { return newQuantity[minutes](n) }

// NewSeconds creates a number of seconds. A negative n is a ValueIsOutOfRangeError.
func NewSeconds(n int64) (Seconds, error) { return newQuantity[seconds](n) }

// ParseDays parses a decimal number of days, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseDays(s string) (Days, error) { return parseQuantity[days](s) }

// ParseMonths parses a decimal number of months, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseMonths(s string) (Months, error) { return parseQuantity[months](s) }

// ParseYears parses a decimal number of years, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseYears(s string) (Years, error) { return parseQuantity[years](s) }

// ParseHours parses a decimal number of hours, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseHours(s string) (Hours, error) { return parseQuantity[hours](s) }

// ParseMinutes parses a decimal number of minutes, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseMinutes(s string) (Minutes, error) { return parseQuantity[minutes](s) }

// ParseSeconds parses a decimal number of seconds, e.g. "12".
//
// Returns:
//   - ValueIsInvalidError if s is not a decimal integer
//   - ValueIsOutOfRangeError if the number is negative
func ParseSeconds(s string) (Seconds, error) { return parseQuantity[seconds](s) }

func newQuantity[U unit](n int64) (Quantity[U], error) {
	if err := bounded.Check(unitName[U](), n, 0, math.MaxInt64); err != nil {
		return Quantity[U]{}, err
	}
	return Quantity[U]{amount: n, guard: guard.NewConstructorGuard()}, nil
}

func parseQuantity[U unit](s string) (Quantity[U], error) {
	n, err := bounded.ParseInt(unitName[U](), s)
	if err != nil {
		return Quantity[U]{}, err
	}
	return newQuantity[U](n)
}

func unitName[U unit]() string {
	var u U
	return u.name()
}

// Validate reports whether q was built by a constructor.
func (q Quantity[U]) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the amount.
func (q Quantity[U]) Value() int64 {
	return q.amount
}

// Unit returns the plural unit name, e.g. "minutes".
func (q Quantity[U]) Unit() string {
	return unitName[U]()
}

// IsZero reports whether the amount is 0.
func (q Quantity[U]) IsZero() bool {
	return q.amount == 0
}

// String returns the amount in decimal.
func (q Quantity[U]) String() string {
	return strconv.FormatInt(q.amount, 10)
}

// Compare returns -1, 0 or +1 ordering q against other by amount.
func (q Quantity[U]) Compare(other Quantity[U]) int {
	switch {
	case q.amount < other.amount:
		return -1
	case q.amount > other.amount:
		return 1
	default:
		return 0
	}
}

// Add returns q+other, or an overflow error when the sum exceeds math.MaxInt64.
func (q Quantity[U]) Add(other Quantity[U]) (Quantity[U], error) {
	sum, ok := bounded.Add(q.amount, other.amount)
	if !ok {
		return Quantity[U]{}, errs.NewArithmeticOverflowError(q.Unit(), "+", q.amount, other.amount)
	}
	return newQuantity[U](sum)
}

// Subtract returns the absolute difference |q-other|. The result is never negative,
// so Minutes(3).Subtract(Minutes(6)) is Minutes(3).
func (q Quantity[U]) Subtract(other Quantity[U]) Quantity[U] {
	return Quantity[U]{
		amount: bounded.AbsDiff(q.amount, other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Multiply returns q*k. A negative factor is out of range.
func (q Quantity[U]) Multiply(k int64) (Quantity[U], error) {
	if k < 0 {
		return Quantity[U]{}, errs.NewValueIsOutOfRangeError("factor", k, int64(0), int64(math.MaxInt64))
	}
	product, ok := bounded.Mul(q.amount, k)
	if !ok {
		return Quantity[U]{}, errs.NewArithmeticOverflowError(q.Unit(), "*", q.amount, k)
	}
	return newQuantity[U](product)
}

// Divide returns floor(q/k).
func (q Quantity[U]) Divide(k int64) (Quantity[U], error) {
	if err := q.checkDivisor(k); err != nil {
		return Quantity[U]{}, err
	}
	return newQuantity[U](bounded.FloorDiv(q.amount, k))
}

// Modulo returns q mod k.
func (q Quantity[U]) Modulo(k int64) (Quantity[U], error) {
	if err := q.checkDivisor(k); err != nil {
		return Quantity[U]{}, err
	}
	return newQuantity[U](bounded.FloorMod(q.amount, k))
}

func (q Quantity[U]) checkDivisor(k int64) error {
	if k == 0 {
		return errs.NewDivisionByZeroError(q.Unit(), q.amount)
	}
	if k < 0 {
		return errs.NewValueIsOutOfRangeError("divisor", k, int64(1), int64(math.MaxInt64))
	}
	return nil
}
