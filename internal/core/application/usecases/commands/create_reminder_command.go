package commands

import (
	"errors"
	"strings"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

var (
	// ErrCreateReminderCommandIsNotConstructed is returned when handling a zero CreateReminderCommand.
	ErrCreateReminderCommandIsNotConstructed = errors.New(
		"CreateReminderCommand must be created via NewCreateReminderCommand constructor",
	)
	// ErrTitleIsRequired is returned for an empty or blank title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// CreateReminderCommand represents a request to register a yearly reminder.
//
// Example:
//
//	date, _ := calendar.ParseMonthDay("10-13")
//	at, _ := clock.ParseTime("09:00")
//	cmd, err := NewCreateReminderCommand(kernel.NewUUID(), "Renew passport", date, at)
//	if err != nil {
//	    return fmt.Errorf("invalid reminder data: %w", err)
//	}
//
//	handler := NewCreateReminderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create reminder: %w", err)
//	}
type CreateReminderCommand struct { //nolint:recvcheck //using for validation
	reminderID kernel.UUID
	title      string
	date       calendar.MonthDay
	at         clock.Time

	guard guard.ConstructorGuard
}

// NewCreateReminderCommand validates every field and reports all failures at once.
func NewCreateReminderCommand(
	reminderID kernel.UUID,
	title string,
	date calendar.MonthDay,
	at clock.Time,
) (CreateReminderCommand, error) {
	cmd := CreateReminderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReminderID(reminderID),
		cmd.setTitle(title),
		cmd.setDate(date),
		cmd.setAt(at),
	); err != nil {
		return CreateReminderCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCreateReminderCommandIsNotConstructed for a zero command.
func (c CreateReminderCommand) Validate() error {
	return c.guard.Validate(ErrCreateReminderCommandIsNotConstructed)
}

// ReminderID returns the identifier the new reminder will carry.
func (c CreateReminderCommand) ReminderID() kernel.UUID {
	return c.reminderID
}

// Title returns the title as given, untrimmed.
func (c CreateReminderCommand) Title() string {
	return c.title
}

// Date returns the day of the year to fire on.
func (c CreateReminderCommand) Date() calendar.MonthDay {
	return c.date
}

// At returns the time of day to fire at.
func (c CreateReminderCommand) At() clock.Time {
	return c.at
}

func (c *CreateReminderCommand) setReminderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.reminderID = id
	return nil
}

func (c *CreateReminderCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateReminderCommand) setDate(date calendar.MonthDay) error {
	if err := date.Validate(); err != nil {
		return err
	}

	c.date = date
	return nil
}

func (c *CreateReminderCommand) setAt(at clock.Time) error {
	if err := at.Validate(); err != nil {
		return err
	}

	c.at = at
	return nil
}
