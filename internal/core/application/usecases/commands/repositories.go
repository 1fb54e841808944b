// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"calendar/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ReminderRepoFactory provides access to the reminder repository within a transaction.
	ReminderRepoFactory interface {
		ReminderRepository() ports.ReminderRepository
	}

	// ReminderUoW manages transactions for operations on reminder aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.ReminderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ReminderUoW interface {
		TxManager
		ReminderRepoFactory
	}

	// ReminderUoWFactory creates new reminder unit of work instances.
	ReminderUoWFactory interface {
		Create() ReminderUoW
	}
)
