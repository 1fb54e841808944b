package commands

import (
	"context"
)

// RescheduleReminderCommandHandler moves a stored reminder to another date.
type RescheduleReminderCommandHandler struct {
	uowFactory ReminderUoWFactory
}

// NewRescheduleReminderCommandHandler opens one unit of work per Handle call from uowFactory.
func NewRescheduleReminderCommandHandler(uowFactory ReminderUoWFactory) RescheduleReminderCommandHandler {
	return RescheduleReminderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the reminder and commits. It returns a NotFoundError if no reminder
// has the command's ID.
func (h RescheduleReminderCommandHandler) Handle(ctx context.Context, cmd RescheduleReminderCommand) error {
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

	if err = r.Reschedule(cmd.Months(), cmd.Days()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
