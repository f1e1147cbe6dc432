// Package ports defines the contracts between the work order core and its infrastructure.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order aggregates.
type WorkOrderRepository interface {
	// Add persists a new work order and assigns the storage generated id to it.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order.
	// Returns errs.ErrObjectNotFound when no row has the order's id.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by id.
	// Returns errs.ErrObjectNotFound when it does not exist.
	Get(ctx context.Context, id int64) (*workorder.WorkOrder, error)
}
