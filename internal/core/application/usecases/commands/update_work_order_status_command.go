package commands

import (
	"errors"
	"fmt"

	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrUpdateWorkOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderStatusCommand must be created via NewUpdateWorkOrderStatusCommand constructor",
)

// UpdateWorkOrderStatusCommand requests a status change of an existing work order.
// The status literal is parsed at construction, so an unknown status never
// reaches storage.
type UpdateWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	id     int64
	status workorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateWorkOrderStatusCommand parses the wire status literal and checks the id.
// Storage only assigns positive ids, so any other id is reported as not found.
func NewUpdateWorkOrderStatusCommand(id int64, status string) (UpdateWorkOrderStatusCommand, error) {
	cmd := UpdateWorkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setStatus(status), cmd.setID(id)); err != nil {
		return UpdateWorkOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderStatusCommandIsNotConstructed)
}

func (c UpdateWorkOrderStatusCommand) ID() int64 {
	return c.id
}

func (c UpdateWorkOrderStatusCommand) Status() workorder.Status {
	return c.status
}

func (c *UpdateWorkOrderStatusCommand) setID(id int64) error {
	if id <= 0 {
		return errs.NewObjectNotFoundErrorWithCause("id", id, fmt.Errorf("%d is not a positive id", id))
	}
	c.id = id
	return nil
}

func (c *UpdateWorkOrderStatusCommand) setStatus(status string) error {
	parsed, err := workorder.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
