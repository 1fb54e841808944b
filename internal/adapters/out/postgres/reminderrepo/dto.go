// Package reminderrepo maps the reminder aggregate onto the reminders table.
package reminderrepo

import (
	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/reminder"

	"github.com/google/uuid"
)

// ReminderDTO is the row layout of a reminder. The date columns share one index so
// due lookups by month and day stay cheap.
type ReminderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Date          DateDTO   `gorm:"embedded"`
	At            TimeDTO   `gorm:"embedded"`
	Postponements int       `gorm:"not null;default:0"`
}

// TableName maps ReminderDTO to the reminders table.
func (ReminderDTO) TableName() string {
	return "reminders"
}

// DateDTO holds the month and day of a calendar.MonthDay.
type DateDTO struct {
	Month int `gorm:"type:smallint;not null;index:idx_reminders_date,priority:1"`
	Day   int `gorm:"type:smallint;not null;index:idx_reminders_date,priority:2"`
}

// TimeDTO holds a clock.Time.
type TimeDTO struct {
	Hour   int `gorm:"type:smallint;not null"`
	Minute int `gorm:"type:smallint;not null"`
	Second int `gorm:"type:smallint;not null"`
}

func fromDomain(r *reminder.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:    r.ID().Bytes(),
		Title: r.Title(),
		Date: DateDTO{
			Month: r.Date().Month().Value(),
			Day:   r.Date().Day().Value(),
		},
		At: TimeDTO{
			Hour:   r.At().Hour().Value(),
			Minute: r.At().Minute().Value(),
			Second: r.At().Second().Value(),
		},
		Postponements: r.Postponements(),
	}
}

// toDomain rebuilds the aggregate with RestoreReminder, so rows edited by hand into an
// impossible date or time are reported instead of loaded.
func toDomain(dto ReminderDTO) (*reminder.Reminder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	date, err := calendar.MonthDayOf(dto.Date.Month, dto.Date.Day)
	if err != nil {
		return nil, err
	}

	at, err := clock.TimeOf(dto.At.Hour, dto.At.Minute, dto.At.Second)
	if err != nil {
		return nil, err
	}

	return reminder.RestoreReminder(id, dto.Title, date, at, dto.Postponements)
}
