package queries

import (
	"context"

	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler reads one work order from the database.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle returns the work order or an errs.ObjectNotFoundError.
func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (WorkOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return WorkOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectWorkOrders+"\n\tWHERE id = ?", query.ID()).Rows()
	if err != nil {
		return WorkOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return WorkOrderResponse{}, err
		}
		return WorkOrderResponse{}, errs.NewObjectNotFoundError("id", query.ID())
	}

	return scanWorkOrder(rows)
}
