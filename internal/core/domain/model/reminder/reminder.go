package reminder

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// MaxTitleLength is the longest accepted title, counted in characters.
const MaxTitleLength = 255

var (
	// ErrTitleIsRequired is returned for an empty or blank title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrReminderIsNotConstructed is returned when using a Reminder that did not come from
	// NewReminder or RestoreReminder.
	ErrReminderIsNotConstructed = errors.New("Reminder must be created via NewReminder constructor")
)

// Reminder is the aggregate root for an annually recurring reminder.
//
// Example:
//
//	date, _ := calendar.ParseMonthDay("10-13")
//	at, _ := clock.ParseTime("09:00")
//	r, err := reminder.NewReminder(kernel.NewUUID(), "Renew passport", date, at)
//	if err != nil {
//	    // handle error
//	}
//	oneHour, _ := clock.NewDuration(1, 0, 0)
//	_ = r.Postpone(oneHour) // 10-13 at 10:00:00
type Reminder struct {
	id            kernel.UUID
	title         string
	date          calendar.MonthDay
	at            clock.Time
	postponements int
	guard         guard.ConstructorGuard
}

// NewReminder creates a reminder that has never been postponed. Surrounding
// whitespace in title is dropped.
func NewReminder(id kernel.UUID, title string, date calendar.MonthDay, at clock.Time) (*Reminder, error) {
	return RestoreReminder(id, title, date, at, 0)
}

// RestoreReminder rebuilds a reminder from persisted state.
func RestoreReminder(
	id kernel.UUID,
	title string,
	date calendar.MonthDay,
	at clock.Time,
	postponements int,
) (*Reminder, error) {
	r := &Reminder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setTitle(title),
		r.setDate(date),
		r.setAt(at),
		r.setPostponements(postponements),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate returns ErrReminderIsNotConstructed for a nil or zero Reminder.
func (r *Reminder) Validate() error {
	if r == nil {
		return ErrReminderIsNotConstructed
	}
	return r.guard.Validate(ErrReminderIsNotConstructed)
}

// IsEqual compares reminders by ID.
func (r *Reminder) IsEqual(other *Reminder) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the identity of the reminder.
func (r *Reminder) ID() kernel.UUID {
	return r.id
}

// Title returns the trimmed title.
func (r *Reminder) Title() string {
	return r.title
}

// Date returns the day of the year the reminder fires on.
func (r *Reminder) Date() calendar.MonthDay {
	return r.date
}

// At returns the time of day the reminder fires at.
func (r *Reminder) At() clock.Time {
	return r.at
}

// Postponements counts successful calls to Postpone.
func (r *Reminder) Postponements() int {
	return r.postponements
}

// Postpone moves the reminder later by d. Time wraps around midnight, and every
// midnight crossed advances the date by one day.
//
// Returns:
//   - ValueIsOutOfRangeError if d is negative
//   - ArithmeticError if d is too long to count in seconds
func (r *Reminder) Postpone(d clock.Duration) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.IsNegative() {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"postponement", d, "PT0H0M0S", fmt.Sprintf("PT%dH59M59S", int64(math.MaxInt64)),
			errors.New("a reminder cannot be moved earlier"),
		)
	}

	total, err := d.TotalSeconds()
	if err != nil {
		return err
	}
	elapsed, ok := bounded.Add(r.at.SecondOfDay(), total)
	if !ok {
		return errs.NewArithmeticOverflowError("postponement", "+", r.at, d)
	}
	days, err := quantity.NewDays(elapsed / clock.SecondsPerDay)
	if err != nil {
		return err
	}

	r.date = r.date.AddDays(days)
	r.at = r.at.AddDuration(d)
	r.postponements++
	return nil
}

// Reschedule moves the date by months and then by days. The time of day is kept.
func (r *Reminder) Reschedule(months quantity.Months, days quantity.Days) error {
	if err := errors.Join(months.Validate(), days.Validate()); err != nil {
		return err
	}

	r.date = r.date.AddMonths(months).AddDays(days)
	return nil
}

func (r *Reminder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reminder) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleIsRequired
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, MaxTitleLength)
	}
	r.title = title
	return nil
}

func (r *Reminder) setDate(date calendar.MonthDay) error {
	if err := date.Validate(); err != nil {
		return err
	}
	r.date = date
	return nil
}

func (r *Reminder) setAt(at clock.Time) error {
	if err := at.Validate(); err != nil {
		return err
	}
	r.at = at
	return nil
}

func (r *Reminder) setPostponements(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("postponements", n, 0, math.MaxInt)
	}
	r.postponements = n
	return nil
}
