package outboxrepo

import (
	"context"
	"log/slog"

	"workorders/internal/core/domain/model/notification"
	"workorders/internal/core/ports"

	"gorm.io/gorm"
)

// Notifier queues conflict notifications in the outbox. It satisfies the
// detector's fire-and-forget contract: failures are logged, never returned.
type Notifier struct {
	outbox *GormOutboxRepository
	clock  ports.Clock
	logger *slog.Logger
}

func NewNotifier(db *gorm.DB, clock ports.Clock, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		outbox: NewGormOutboxRepository(db),
		clock:  clock,
		logger: logger.With("component", "notification-outbox"),
	}
}

// Notify stores a pending notification for the recipient.
func (n *Notifier) Notify(ctx context.Context, recipient, reason string) {
	entry, err := notification.NewNotification(recipient, reason, n.clock.Now())
	if err != nil {
		n.logger.ErrorContext(ctx, "invalid notification", "recipient", recipient, "error", err)
		return
	}

	if err = n.outbox.Add(ctx, entry); err != nil {
		n.logger.ErrorContext(ctx, "failed to queue notification",
			"id", entry.ID().String(), "recipient", recipient, "error", err)
		return
	}

	n.logger.InfoContext(ctx, "notification queued", "id", entry.ID().String(), "recipient", recipient)
}
