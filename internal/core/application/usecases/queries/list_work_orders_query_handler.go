package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"workorders/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

const selectWorkOrders = `
	SELECT
		id,
		description,
		latitude,
		longitude,
		radius_meters,
		scheduled_time,
		status,
		conflict_reason
	FROM work_orders`

// ListWorkOrdersQueryHandler reads work orders straight from the database.
type ListWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListWorkOrdersQueryHandler creates a handler for work order listings.
func NewListWorkOrdersQueryHandler(db *gorm.DB) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{db: db}
}

// Handle returns the matching work orders ordered by scheduled time
// descending, ties broken by id descending. The result is never nil.
func (h ListWorkOrdersQueryHandler) Handle(ctx context.Context, query ListWorkOrdersQuery) ([]WorkOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(selectWorkOrders)
	if status, ok := query.Status(); ok {
		sb.WriteString("\n\tWHERE status = ?")
		args = append(args, status.String())
	}
	sb.WriteString("\n\tORDER BY scheduled_time DESC, id DESC")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]WorkOrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanWorkOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanWorkOrder(rows *sql.Rows) (WorkOrderResponse, error) {
	var (
		resp          WorkOrderResponse
		status        string
		scheduledTime time.Time
	)

	err := rows.Scan(
		&resp.ID,
		&resp.Description,
		&resp.Latitude,
		&resp.Longitude,
		&resp.RadiusMeters,
		&scheduledTime,
		&status,
		&resp.ConflictReason,
	)
	if err != nil {
		return WorkOrderResponse{}, err
	}

	resp.Status, err = workorder.ParseStatus(status)
	if err != nil {
		return WorkOrderResponse{}, err
	}
	resp.ScheduledTime = scheduledTime.UTC()

	return resp, nil
}
