package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of aggregates that do not exist.
	ErrObjectNotFound        = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for malformed input, such as text that does not parse.
	ErrValueIsInvalid        = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside their inclusive bounds.
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing values and values that bypassed their constructor.
	ErrValueIsRequired       = errors.New("value is required")
	// ErrArithmeticOverflow is the sentinel for results above the largest representable value.
	ErrArithmeticOverflow    = errors.New("arithmetic overflow")
	// ErrArithmeticUnderflow is the sentinel for results below the smallest representable value.
	ErrArithmeticUnderflow   = errors.New("arithmetic underflow")
	// ErrDivisionByZero is the sentinel for divide and modulo operations with a zero divisor.
	ErrDivisionByZero        = errors.New("division by zero")
	// ErrValuesAreIncomparable is the sentinel for comparisons between values with no common ordering.
	ErrValuesAreIncomparable = errors.New("values are incomparable")
)

// ObjectNotFoundError reports that an aggregate with the given ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing aggregate.
//
// Parameters:
//   - paramName: the kind of object looked up, e.g. "reminder"
//   - id: the identifier that matched nothing
//
// Example:
//
//	err := errs.NewObjectNotFoundError("reminder", id.String())
//	errors.Is(err, errs.ErrObjectNotFound) // true
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause is NewObjectNotFoundError keeping the underlying
// error, typically the storage driver's record-not-found error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error returns "object not found: <id>", with the parameter name and cause when a
// cause is present.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

// Unwrap returns ErrObjectNotFound so callers can match with errors.Is.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for a malformed value of paramName.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for a malformed value of paramName,
// keeping the parse error that rejected it.
//
// Example:
//
//	n, err := strconv.ParseInt(s, 10, 64)
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("year", err)
//	}
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error returns "value is invalid: <param>" followed by the cause, if any.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap returns ErrValueIsInvalid.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive range [Min..Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for value lying outside [minValue..maxValue].
//
// Parameters:
//   - paramName: name of the checked value, e.g. "month"
//   - value: the rejected value
//   - minValue, maxValue: the inclusive bounds
//
// Example:
//
//	if n < 1 || n > 12 {
//	    return errs.NewValueIsOutOfRangeError("month", n, 1, 12)
//	}
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with an explanation
// attached, for bounds that depend on another value such as the month of a day.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

// Error returns the rejected value together with both bounds.
func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns ErrValueIsOutOfRange.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing value or a value that bypassed its constructor.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing paramName. Constructor guards
// use it with a message naming the constructors to call instead.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause is NewValueIsRequiredError with the underlying error.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error returns "value is required: <param>" followed by the cause, if any.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap returns ErrValueIsRequired.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ArithmeticError reports an operation whose result cannot be represented.
// Sentinel is either ErrArithmeticOverflow or ErrArithmeticUnderflow.
type ArithmeticError struct {
	Sentinel  error
	ParamName string
	Operation string
	Left      any
	Right     any
}

// NewArithmeticOverflowError reports that left <operation> right exceeds the largest
// value paramName can hold.
//
// Example:
//
//	sum, ok := bounded.Add(a, b)
//	if !ok {
//	    return errs.NewArithmeticOverflowError("days", "+", a, b)
//	}
func NewArithmeticOverflowError(paramName, operation string, left, right any) *ArithmeticError {
	return &ArithmeticError{
		Sentinel:  ErrArithmeticOverflow,
		ParamName: paramName,
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

// NewArithmeticUnderflowError reports that left <operation> right falls below the
// smallest value paramName can hold.
func NewArithmeticUnderflowError(paramName, operation string, left, right any) *ArithmeticError {
	return &ArithmeticError{
		Sentinel:  ErrArithmeticUnderflow,
		ParamName: paramName,
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

// Error returns the sentinel text followed by the failed expression.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %s %v %s %v",
		e.Unwrap(), e.ParamName, sanitize(e.Left), e.Operation, sanitize(e.Right))
}

// Unwrap returns the sentinel. An ArithmeticError built without one counts as an
// overflow.
func (e *ArithmeticError) Unwrap() error {
	if e.Sentinel == nil {
		return ErrArithmeticOverflow
	}
	return e.Sentinel
}

// DivisionByZeroError reports a divide or modulo with a zero divisor.
type DivisionByZeroError struct {
	ParamName string
	Dividend  any
}

// NewDivisionByZeroError reports that dividend of paramName was divided by zero.
func NewDivisionByZeroError(paramName string, dividend any) *DivisionByZeroError {
	return &DivisionByZeroError{
		ParamName: paramName,
		Dividend:  dividend,
	}
}

// Error returns "division by zero" followed by the dividend.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: %s %v", ErrDivisionByZero, e.ParamName, sanitize(e.Dividend))
}

// Unwrap returns ErrDivisionByZero.
func (e *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}

// ValuesAreIncomparableError reports two values with no defined ordering between them.
type ValuesAreIncomparableError struct {
	ParamName string
	Left      any
	Right     any
}

// NewValuesAreIncomparableError reports that left and right cannot be ordered, e.g.
// years of two different calendar systems.
//
// Example:
//
//	if y.System() != other.System() {
//	    return 0, errs.NewValuesAreIncomparableError("calendar system", y.System(), other.System())
//	}
func NewValuesAreIncomparableError(paramName string, left, right any) *ValuesAreIncomparableError {
	return &ValuesAreIncomparableError{
		ParamName: paramName,
		Left:      left,
		Right:     right,
	}
}

// Error returns the sentinel text followed by both values.
func (e *ValuesAreIncomparableError) Error() string {
	return fmt.Sprintf("%s: %s %v and %v",
		ErrValuesAreIncomparable, e.ParamName, sanitize(e.Left), sanitize(e.Right))
}

// Unwrap returns ErrValuesAreIncomparable.
func (e *ValuesAreIncomparableError) Unwrap() error {
	return ErrValuesAreIncomparable
}

// sanitize renders v on a single line so error messages stay log-friendly.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
