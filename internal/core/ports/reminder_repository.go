// Package ports defines the persistence contracts the application layer depends on.
// Adapters in internal/adapters implement them.
package ports

import (
	"context"

	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/reminder"
)

// ReminderRepository defines the persistence contract for reminder aggregates.
type ReminderRepository interface {
	// Add persists a new reminder aggregate.
	Add(ctx context.Context, aggregate *reminder.Reminder) error

	// Update persists changes to an existing reminder.
	// Returns an ObjectNotFoundError if the reminder does not exist.
	Update(ctx context.Context, aggregate *reminder.Reminder) error

	// Get retrieves a reminder by its unique identifier.
	// Returns an ObjectNotFoundError if the reminder does not exist.
	Get(ctx context.Context, id kernel.UUID) (*reminder.Reminder, error)
}
