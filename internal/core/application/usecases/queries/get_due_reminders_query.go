package queries

import (
	"errors"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/pkg/guard"
)

// ErrGetDueRemindersQueryIsNotConstructed is returned when handling a zero GetDueRemindersQuery.
var ErrGetDueRemindersQueryIsNotConstructed = errors.New(
	"GetDueRemindersQuery must be created via NewGetDueRemindersQuery constructor",
)

// GetDueRemindersQuery selects the reminders that fire on a date within the minute of a
// time. Seconds of the time are ignored.
//
// Example:
//
//	date, _ := calendar.ParseMonthDay("10-13")
//	at, _ := clock.ParseTime("09:30")
//	query, err := NewGetDueRemindersQuery(date, at)
//	if err != nil {
//	    return err
//	}
//	due, err := NewGetDueRemindersQueryHandler(db).Handle(ctx, query)
type GetDueRemindersQuery struct { //nolint:recvcheck //using for validation
	date calendar.MonthDay
	at   clock.Time

	guard guard.ConstructorGuard
}

// NewGetDueRemindersQuery returns an error if date or at is a zero value.
func NewGetDueRemindersQuery(date calendar.MonthDay, at clock.Time) (GetDueRemindersQuery, error) {
	q := GetDueRemindersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setDate(date),
		q.setAt(at),
	); err != nil {
		return GetDueRemindersQuery{}, err
	}

	return q, nil
}

// Validate returns ErrGetDueRemindersQueryIsNotConstructed for a zero query.
func (q GetDueRemindersQuery) Validate() error {
	return q.guard.Validate(ErrGetDueRemindersQueryIsNotConstructed)
}

// Date returns the day of the year to match.
func (q GetDueRemindersQuery) Date() calendar.MonthDay {
	return q.date
}

// At returns the time whose hour and minute are matched.
func (q GetDueRemindersQuery) At() clock.Time {
	return q.at
}

func (q *GetDueRemindersQuery) setDate(date calendar.MonthDay) error {
	if err := date.Validate(); err != nil {
		return err
	}

	q.date = date
	return nil
}

func (q *GetDueRemindersQuery) setAt(at clock.Time) error {
	if err := at.Validate(); err != nil {
		return err
	}

	q.at = at
	return nil
}
