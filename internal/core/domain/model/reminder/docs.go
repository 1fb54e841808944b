// Package reminder provides the Reminder aggregate: a titled reminder that recurs
// every year on a calendar.MonthDay at a clock.Time.
//
// Key business rules:
//   - A reminder needs a valid ID, a non-blank title of at most 255 characters, a date and a time
//   - Postponing moves the time forward by a non-negative clock.Duration; whole days
//     carried past midnight move the date, wrapping from December 31 to January 1
//   - Rescheduling shifts the date by months (clamping to the month length) and then by days
//   - A reminder is due when date, hour and minute all match; seconds are ignored
package reminder
