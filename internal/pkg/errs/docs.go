// Package errs provides standardized error types for the calendar value types
// and the reminder service built on top of them.
//
// The package includes one error type per failure category:
//   - ValueIsOutOfRangeError: a value lies outside its declared domain
//   - ValueIsInvalidError: a value (usually text) does not match the expected grammar
//   - ValueIsRequiredError: a value is missing or was not created through its constructor
//   - ArithmeticError: an arithmetic operation overflowed or underflowed
//   - DivisionByZeroError: a divide or modulo by zero was requested
//   - ValuesAreIncomparableError: two values have no defined ordering
//   - ObjectNotFoundError: an aggregate cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsOutOfRange)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
