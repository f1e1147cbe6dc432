package commands

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to register a new excavation.
// Coordinates and radius are pointers so a missing value can be told apart
// from zero.
//
// Example:
//
//	lat, lon, radius := 40.7128, -74.0060, 10.0
//	cmd, err := NewCreateWorkOrderCommand("Fix gas leak", &lat, &lon, &radius)
//	if err != nil {
//	    return fmt.Errorf("invalid work order: %w", err)
//	}
//
//	wo, err := handler.Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	description   string
	site          kernel.Zone
	scheduledTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand validates the payload of a create request.
// Missing coordinates or radius are ValueIsRequired errors; bad values come
// from the kernel constructors. All failures are joined.
func NewCreateWorkOrderCommand(description string, latitude, longitude, radiusMeters *float64) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setSite(latitude, longitude, radiusMeters); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// WithScheduledTime returns a copy of the command that schedules the work at t
// instead of at the handler's current time.
func (c CreateWorkOrderCommand) WithScheduledTime(t time.Time) CreateWorkOrderCommand {
	c.scheduledTime = t
	return c
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

func (c CreateWorkOrderCommand) Description() string {
	return c.description
}

func (c CreateWorkOrderCommand) Site() kernel.Zone {
	return c.site
}

// ScheduledTime returns the override, or the zero time when none was set.
func (c CreateWorkOrderCommand) ScheduledTime() time.Time {
	return c.scheduledTime
}

func (c *CreateWorkOrderCommand) setSite(latitude, longitude, radiusMeters *float64) error {
	var missing []error
	if latitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("latitude"))
	}
	if longitude == nil {
		missing = append(missing, errs.NewValueIsRequiredError("longitude"))
	}
	if radiusMeters == nil {
		missing = append(missing, errs.NewValueIsRequiredError("radiusMeters"))
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	location, err := kernel.NewLocation(*latitude, *longitude)
	if err != nil {
		return errors.Join(err, kernel.ValidateRadius(*radiusMeters))
	}

	site, err := kernel.NewZone(location, *radiusMeters)
	if err != nil {
		return err
	}

	c.site = site
	return nil
}
