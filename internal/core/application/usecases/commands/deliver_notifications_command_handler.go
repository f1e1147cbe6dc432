package commands

import (
	"context"
	"log/slog"

	"workorders/internal/core/ports"
)

// DeliveryReport counts the outcome of one delivery run.
type DeliveryReport struct {
	Delivered int
	Failed    int
}

// DeliverNotificationsCommandHandler sends pending outbox entries and records
// the outcome of every attempt. A failed send is recorded on the entry and
// retried on a later run; it does not fail the command.
type DeliverNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.NotificationSender
	clock      ports.Clock
	logger     *slog.Logger
}

// NewDeliverNotificationsCommandHandler creates the delivery handler.
func NewDeliverNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.NotificationSender,
	clock ports.Clock,
	logger *slog.Logger,
) DeliverNotificationsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DeliverNotificationsCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		clock:      clock,
		logger:     logger.With("component", "notification-delivery"),
	}
}

// Handle delivers one batch inside a single transaction.
func (h *DeliverNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverNotificationsCommand,
) (DeliveryReport, error) {
	var report DeliveryReport
	if err := cmd.Validate(); err != nil {
		return report, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.NotificationOutbox()

	pending, err := outbox.GetPending(ctx, cmd.BatchSize(), cmd.MaxAttempts())
	if err != nil {
		return report, err
	}

	for _, n := range pending {
		if sendErr := h.sender.Send(ctx, n.Recipient(), n.Message()); sendErr != nil {
			h.logger.ErrorContext(ctx, "notification delivery failed",
				"id", n.ID().String(), "recipient", n.Recipient(), "error", sendErr)
			if err = n.RecordFailure(sendErr); err != nil {
				return report, err
			}
			report.Failed++
		} else {
			if err = n.MarkDelivered(h.clock.Now()); err != nil {
				return report, err
			}
			report.Delivered++
		}

		if err = outbox.Update(ctx, n); err != nil {
			return report, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return report, err
	}

	if len(pending) > 0 {
		h.logger.InfoContext(ctx, "notification batch processed",
			"delivered", report.Delivered, "failed", report.Failed)
	}

	return report, nil
}
