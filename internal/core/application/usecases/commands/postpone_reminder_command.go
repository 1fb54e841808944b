package commands

import (
	"errors"

	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/pkg/guard"
)

// ErrPostponeReminderCommandIsNotConstructed is returned when handling a zero PostponeReminderCommand.
var ErrPostponeReminderCommandIsNotConstructed = errors.New(
	"PostponeReminderCommand must be created via NewPostponeReminderCommand constructor",
)

// PostponeReminderCommand moves an existing reminder later by a duration.
type PostponeReminderCommand struct { //nolint:recvcheck //using for validation
	reminderID kernel.UUID
	duration   clock.Duration

	guard guard.ConstructorGuard
}

// NewPostponeReminderCommand creates a command for the reminder reminderID.
//
// Parameters:
//   - reminderID: identifier of a stored reminder
//   - duration: how far to move it; the sign is checked when the reminder is postponed
//
// Returns:
//   - ErrUUIDIsNotConstructed for a nil reminderID
//   - ErrDurationIsNotConstructed for a zero-value duration
func NewPostponeReminderCommand(reminderID kernel.UUID, duration clock.Duration) (PostponeReminderCommand, error) {
	cmd := PostponeReminderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReminderID(reminderID),
		cmd.setDuration(duration),
	); err != nil {
		return PostponeReminderCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrPostponeReminderCommandIsNotConstructed for a zero command.
func (c PostponeReminderCommand) Validate() error {
	return c.guard.Validate(ErrPostponeReminderCommandIsNotConstructed)
}

// ReminderID returns the reminder to postpone.
func (c PostponeReminderCommand) ReminderID() kernel.UUID {
	return c.reminderID
}

// Duration returns how far to move the reminder.
func (c PostponeReminderCommand) Duration() clock.Duration {
	return c.duration
}

func (c *PostponeReminderCommand) setReminderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.reminderID = id
	return nil
}

func (c *PostponeReminderCommand) setDuration(d clock.Duration) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.duration = d
	return nil
}
