// Package commands contains business operations that modify system state.
// Every command is built through its constructor and handled inside a unit of work.
package commands

import (
	"context"

	"workorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// NotificationOutboxFactory provides access to the outbox within a transaction.
	NotificationOutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// WorkOrderUoW manages transactions for work order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.WorkOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// NotificationUoW manages transactions over the notification outbox.
	NotificationUoW interface {
		TxManager
		NotificationOutboxFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
