package commands

import (
	"context"
	"log/slog"

	"workorders/internal/core/domain/model/workorder"
)

// UpdateWorkOrderStatusCommandHandler changes the status of a stored work order.
// Transition legality is delegated to the configured TransitionPolicy.
type UpdateWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	policy     workorder.TransitionPolicy
	logger     *slog.Logger
}

// NewUpdateWorkOrderStatusCommandHandler creates the handler. A nil policy is permissive.
func NewUpdateWorkOrderStatusCommandHandler(
	uowFactory WorkOrderUoWFactory,
	policy workorder.TransitionPolicy,
	logger *slog.Logger,
) UpdateWorkOrderStatusCommandHandler {
	if policy == nil {
		policy = workorder.PermissivePolicy{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger.With("component", "update-work-order-status"),
	}
}

// Handle loads the order, applies the transition and persists it.
// An unknown id yields errs.ErrObjectNotFound and nothing is written.
func (h *UpdateWorkOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateWorkOrderStatusCommand,
) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	wo, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	from := wo.Status()
	if err = wo.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "work order status changed",
		"id", wo.ID(), "from", from.String(), "to", wo.Status().String())

	return wo, nil
}
