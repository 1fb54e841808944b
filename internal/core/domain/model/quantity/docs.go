// Package quantity provides the delta values used to shift calendar and clock values:
// Days, Months, Years, Hours, Minutes and Seconds.
//
// A quantity is a non-negative amount of a single unit. All six units share one
// generic implementation, Quantity[U], where U is an unexported marker type, so a
// Days can never be added to a Minutes by mistake.
//
// Quantities are immutable. Arithmetic returns a new value or an error:
//   - Add and Multiply fail with errs.ErrArithmeticOverflow past math.MaxInt64
//   - Subtract returns the absolute difference |a-b| and never fails
//   - Divide and Modulo use floor semantics and fail with errs.ErrDivisionByZero on 0
package quantity
