package commands

import (
	"context"
)

// PostponeReminderCommandHandler loads a reminder, postpones it and stores it back in
// one transaction.
//
// Example:
//
//	d, _ := clock.ParseDuration("PT1H0M0S")
//	cmd, _ := NewPostponeReminderCommand(id, d)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such reminder
//	case errors.Is(err, errs.ErrValueIsOutOfRange):
//	    // negative duration
//	}
type PostponeReminderCommandHandler struct {
	uowFactory ReminderUoWFactory
}

// NewPostponeReminderCommandHandler opens one unit of work per Handle call from uowFactory.
func NewPostponeReminderCommandHandler(uowFactory ReminderUoWFactory) PostponeReminderCommandHandler {
	return PostponeReminderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle postpones the reminder and commits.
//
// Returns:
//   - NotFoundError if no reminder has the command's ID
//   - ValueIsOutOfRangeError for a negative duration
//   - ArithmeticError if the total shift overflows
func (h PostponeReminderCommandHandler) Handle(ctx context.Context, cmd PostponeReminderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReminderRepository()
	r, err := repo.Get(ctx, cmd.ReminderID())
	if err != nil {
		return err
	}

	if err = r.Postpone(cmd.Duration()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
