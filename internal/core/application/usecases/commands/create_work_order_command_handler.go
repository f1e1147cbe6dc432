package commands

import (
	"context"
	"log/slog"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"
)

// ConflictChecker screens a dig site and reports the first conflict, if any.
type ConflictChecker interface {
	CheckConflicts(ctx context.Context, site kernel.Zone) (*services.Conflict, error)
}

// CreateWorkOrderCommandHandler screens a new work order for conflicts and stores it.
//
// Screening runs before the transaction opens, so a notification queued by the
// detector does not share the work order's transaction.
//
// Example:
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, detector, clock.System{}, logger)
//	wo, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("work order creation failed: %w", err)
//	}
//	// wo.Status() is PendingApproval or ConflictDetected
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	checker    ConflictChecker
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation.
func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	checker ConflictChecker,
	clock ports.Clock,
	logger *slog.Logger,
) CreateWorkOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
		clock:      clock,
		logger:     logger.With("component", "create-work-order"),
	}
}

// Handle processes the creation command and returns the stored work order.
// A detected conflict is a successful creation with ConflictDetected status.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	conflict, err := h.checker.CheckConflicts(ctx, cmd.Site())
	if err != nil {
		return nil, err
	}

	reason := ""
	if conflict != nil {
		reason = conflict.Reason
	}

	scheduledTime := cmd.ScheduledTime()
	if scheduledTime.IsZero() {
		scheduledTime = h.clock.Now()
	}

	wo, err := workorder.NewWorkOrder(cmd.Description(), cmd.Site(), scheduledTime.UTC(), reason)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderRepository().Add(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if conflict != nil {
		h.logger.WarnContext(ctx, "work order created with conflict",
			"id", wo.ID(),
			"asset", conflict.Asset.ID(),
			"distanceMeters", conflict.DistanceMeters)
	} else {
		h.logger.InfoContext(ctx, "work order created", "id", wo.ID())
	}

	return wo, nil
}
