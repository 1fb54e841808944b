// Package clock provides the time-of-day value types.
//
// The package includes:
//   - Hour, Minute, Second: range-checked scalars in [0..23] and [0..59]
//   - Time: a wall-clock (Hour, Minute, Second) that wraps around midnight
//   - Duration: an elapsed-time accumulator with unbounded hours and normalized
//     minutes and seconds, written as "PT{h}H{m}M{s}S"
//
// Time arithmetic never fails: every shift is reduced modulo 24 hours. Duration
// arithmetic carries and borrows field by field and reports int64 overflow as
// errs.ErrArithmeticOverflow or errs.ErrArithmeticUnderflow.
package clock
