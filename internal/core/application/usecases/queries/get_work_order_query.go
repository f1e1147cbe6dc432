package queries

import (
	"errors"
	"fmt"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves a single work order by id.
type GetWorkOrderQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates the query. A non-positive id can never exist
// and is reported as not found.
func NewGetWorkOrderQuery(id int64) (GetWorkOrderQuery, error) {
	if id <= 0 {
		return GetWorkOrderQuery{}, errs.NewObjectNotFoundErrorWithCause("id", id, fmt.Errorf("%d is not a positive id", id))
	}
	return GetWorkOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

func (q GetWorkOrderQuery) ID() int64 {
	return q.id
}
