package queries

import (
	"database/sql"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ReminderResponse is the read model of a reminder shared by the reminder queries.
type ReminderResponse struct {
	ID            kernel.UUID
	Title         string
	Date          calendar.MonthDay
	At            clock.Time
	Postponements int
}

const selectReminders = `
	SELECT
		id,
		title,
		month,
		day,
		hour,
		minute,
		second,
		postponements
	FROM reminders`

// scanReminders reads rows in selectReminders column order.
func scanReminders(rows *sql.Rows) ([]ReminderResponse, error) {
	reminders := make([]ReminderResponse, 0)

	for rows.Next() {
		var (
			resp                 ReminderResponse
			id                   uuid.UUID
			month, day           int
			hour, minute, second int
		)

		if err := rows.Scan(
			&id,
			&resp.Title,
			&month,
			&day,
			&hour,
			&minute,
			&second,
			&resp.Postponements,
		); err != nil {
			return nil, err
		}

		reminderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = reminderID

		if resp.Date, err = calendar.MonthDayOf(month, day); err != nil {
			return nil, err
		}
		if resp.At, err = clock.TimeOf(hour, minute, second); err != nil {
			return nil, err
		}

		reminders = append(reminders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}
