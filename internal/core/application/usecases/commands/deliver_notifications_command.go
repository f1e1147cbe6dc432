package commands

import (
	"errors"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrDeliverNotificationsCommandIsNotConstructed = errors.New(
	"DeliverNotificationsCommand must be created via NewDeliverNotificationsCommand constructor",
)

// DeliverNotificationsCommand drains one batch of the notification outbox.
// It is issued periodically by the delivery job.
type DeliverNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

// NewDeliverNotificationsCommand creates a command that sends at most batchSize
// notifications, skipping entries that already failed maxAttempts times.
func NewDeliverNotificationsCommand(batchSize, maxAttempts int) (DeliverNotificationsCommand, error) {
	var errList []error
	if batchSize <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded"))
	}
	if maxAttempts <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("maxAttempts", maxAttempts, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return DeliverNotificationsCommand{}, err
	}

	return DeliverNotificationsCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDeliverNotificationsCommandIsNotConstructed)
}

func (c DeliverNotificationsCommand) BatchSize() int {
	return c.batchSize
}

func (c DeliverNotificationsCommand) MaxAttempts() int {
	return c.maxAttempts
}
