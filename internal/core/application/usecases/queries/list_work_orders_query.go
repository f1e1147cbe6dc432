package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery retrieves work orders, newest scheduled first.
// An optional status narrows the result to one lifecycle state, which is how
// the manager and field technician views read the list.
//
// Example:
//
//	query, err := NewListWorkOrdersQuery("CONFLICT_DETECTED")
//	if err != nil {
//	    return err // unknown status literal
//	}
//	orders, err := handler.Handle(ctx, query)
type ListWorkOrdersQuery struct {
	status *workorder.Status

	guard guard.ConstructorGuard
}

// NewListWorkOrdersQuery creates the query. An empty status lists every order.
func NewListWorkOrdersQuery(status string) (ListWorkOrdersQuery, error) {
	query := ListWorkOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return query, nil
	}

	parsed, err := workorder.ParseStatus(status)
	if err != nil {
		return ListWorkOrdersQuery{}, err
	}
	query.status = &parsed

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

// Status returns the filter and whether one is set.
func (q ListWorkOrdersQuery) Status() (workorder.Status, bool) {
	if q.status == nil {
		return workorder.Unknown, false
	}
	return *q.status, true
}

// WorkOrderResponse is the read model of a stored work order.
type WorkOrderResponse struct {
	ID             int64
	Description    string
	Latitude       float64
	Longitude      float64
	RadiusMeters   float64
	ScheduledTime  time.Time
	Status         workorder.Status
	ConflictReason string
}
