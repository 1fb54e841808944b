package commands

import (
	"context"

	"calendar/internal/core/domain/model/reminder"
)

// CreateReminderCommandHandler persists a new reminder inside a transaction.
type CreateReminderCommandHandler struct {
	uowFactory ReminderUoWFactory
}

// NewCreateReminderCommandHandler opens one unit of work per Handle call from uowFactory.
func NewCreateReminderCommandHandler(uowFactory ReminderUoWFactory) CreateReminderCommandHandler {
	return CreateReminderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the Reminder aggregate and adds it to the repository.
func (h CreateReminderCommandHandler) Handle(ctx context.Context, cmd CreateReminderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := reminder.NewReminder(cmd.ReminderID(), cmd.Title(), cmd.Date(), cmd.At())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ReminderRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
