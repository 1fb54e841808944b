package commands

import (
	"errors"

	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/guard"
)

// ErrRescheduleReminderCommandIsNotConstructed is returned when handling a zero RescheduleReminderCommand.
var ErrRescheduleReminderCommandIsNotConstructed = errors.New(
	"RescheduleReminderCommand must be created via NewRescheduleReminderCommand constructor",
)

// RescheduleReminderCommand shifts the date of a reminder by months and days.
type RescheduleReminderCommand struct { //nolint:recvcheck //using for validation
	reminderID kernel.UUID
	months     quantity.Months
	days       quantity.Days

	guard guard.ConstructorGuard
}

// NewRescheduleReminderCommand creates a command that moves the reminder reminderID
// forward by months, then by days.
func NewRescheduleReminderCommand(
	reminderID kernel.UUID,
	months quantity.Months,
	days quantity.Days,
) (RescheduleReminderCommand, error) {
	cmd := RescheduleReminderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReminderID(reminderID),
		cmd.setShift(months, days),
	); err != nil {
		return RescheduleReminderCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrRescheduleReminderCommandIsNotConstructed for a zero command.
func (c RescheduleReminderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleReminderCommandIsNotConstructed)
}

// ReminderID returns the reminder to move.
func (c RescheduleReminderCommand) ReminderID() kernel.UUID {
	return c.reminderID
}

// Months returns the whole months to move forward, applied first.
func (c RescheduleReminderCommand) Months() quantity.Months {
	return c.months
}

// Days returns the days to move forward after the months.
func (c RescheduleReminderCommand) Days() quantity.Days {
	return c.days
}

func (c *RescheduleReminderCommand) setReminderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.reminderID = id
	return nil
}

func (c *RescheduleReminderCommand) setShift(months quantity.Months, days quantity.Days) error {
	if err := errors.Join(months.Validate(), days.Validate()); err != nil {
		return err
	}

	c.months = months
	c.days = days
	return nil
}
