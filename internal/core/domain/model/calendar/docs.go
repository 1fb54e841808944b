// Package calendar provides the date-side value types and the two calendar systems
// they are interpreted in.
//
// The package includes:
//   - System: the closed set of calendar systems, Julian and Gregorian
//   - Month, Day, Weekday: range-checked scalars
//   - Year: a (System, magnitude) pair with proleptic numbering and no year zero
//   - JulianCalendar, GregorianCalendar: stateless leap-year, month-length and
//     year-length rules, plus the Julian Easter computation
//   - MonthDay: a year-agnostic (Month, Day) pair with clamping and carrying arithmetic
//
// All values are immutable and must be created through their constructors; the
// zero value of every struct type fails Validate. Calendars hold no state and are
// safe for concurrent use.
//
// Two historical simplifications are kept deliberately:
//   - the Gregorian reform is fixed at 1582 for every country, and that year is
//     reported as 355 days long
//   - Year.WeeksWithin is a stub that always returns 0; ISO week numbering is not modeled
package calendar
