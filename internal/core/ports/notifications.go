package ports

import (
	"context"

	"workorders/internal/core/domain/model/notification"
)

// NotificationOutbox stores notifications until they are delivered.
type NotificationOutbox interface {
	// Add stores a new pending notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists delivery progress of an existing notification.
	Update(ctx context.Context, n *notification.Notification) error

	// GetPending returns up to limit undelivered notifications with fewer than
	// maxAttempts attempts, oldest first.
	GetPending(ctx context.Context, limit, maxAttempts int) ([]*notification.Notification, error)
}

// NotificationSender delivers a message to an affected party over some channel.
type NotificationSender interface {
	Send(ctx context.Context, recipient, message string) error
}
