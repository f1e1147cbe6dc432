package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// NoConflictReason is stored as the conflict reason of orders that passed screening.
const NoConflictReason = "None"

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not created
	// through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

	// ErrIDIsAlreadyAssigned is returned when storage tries to assign an id twice.
	ErrIDIsAlreadyAssigned = errors.New("work order id is already assigned")
)

// WorkOrder is a request to excavate inside a circular site at a scheduled time.
// It is the aggregate root of the workflow.
//
// WorkOrder follows these invariants:
//   - status and conflict reason are set together, at construction
//   - the conflict reason is never empty: it explains the conflict or is NoConflictReason
//   - a ConflictDetected order always carries a real reason
//   - the id is assigned once, by storage, and never changes
//   - after construction, status only changes through ChangeStatus
type WorkOrder struct {
	// id is assigned by storage; zero until the order is first saved
	id int64

	// description is free text
	description string

	// site is the dig location and its work radius
	site kernel.Zone

	// scheduledTime is when the work is planned
	scheduledTime time.Time

	// status is the current lifecycle state
	status Status

	// conflictReason explains a detected conflict or holds NoConflictReason
	conflictReason string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewWorkOrder creates a not yet persisted work order from the outcome of
// conflict screening.
//
// Parameters:
//   - description: free text
//   - site: the validated dig zone
//   - scheduledTime: when the work is planned (must be set)
//   - conflictReason: the detector's reason, or "" when no conflict was found
//
// Returns an order in ConflictDetected status when conflictReason is not blank,
// otherwise an order in PendingApproval status with NoConflictReason.
//
// Example:
//
//	site, _ := kernel.NewZone(location, 10)
//	wo, err := workorder.NewWorkOrder("Replace hydrant", site, now, "")
//	// wo.Status() == workorder.PendingApproval
func NewWorkOrder(description string, site kernel.Zone, scheduledTime time.Time, conflictReason string) (*WorkOrder, error) {
	wo := &WorkOrder{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setSite(site),
		wo.setScheduledTime(scheduledTime),
		wo.screen(conflictReason),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// RestoreWorkOrder rebuilds a persisted work order and requires a storage id.
// The status/reason coupling of NewWorkOrder holds at creation only: any
// status may be stored next to NoConflictReason after a manual change.
func RestoreWorkOrder(
	id int64,
	description string,
	site kernel.Zone,
	scheduledTime time.Time,
	status Status,
	conflictReason string,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.AssignID(id),
		wo.setSite(site),
		wo.setScheduledTime(scheduledTime),
		wo.setStatusAndReason(status, conflictReason),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// Validate ensures the WorkOrder was built by one of its constructors.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by id.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id != 0 && w.id == other.id
}

// ID returns the storage id, or zero before the order is first saved.
func (w *WorkOrder) ID() int64 {
	return w.id
}

// Description returns the free text description.
func (w *WorkOrder) Description() string {
	return w.description
}

// Site returns the dig zone.
func (w *WorkOrder) Site() kernel.Zone {
	return w.site
}

// ScheduledTime returns when the work is planned.
func (w *WorkOrder) ScheduledTime() time.Time {
	return w.scheduledTime
}

// Status returns the current lifecycle state.
func (w *WorkOrder) Status() Status {
	return w.status
}

// ConflictReason returns the conflict explanation or NoConflictReason.
func (w *WorkOrder) ConflictReason() string {
	return w.conflictReason
}

// HasConflict reports whether screening found a conflict when the order was created.
func (w *WorkOrder) HasConflict() bool {
	return w.conflictReason != NoConflictReason
}

// AssignID records the id storage generated for this order.
// It may only be called once, with a positive id.
func (w *WorkOrder) AssignID(id int64) error {
	if w.id != 0 {
		return fmt.Errorf("%w: %d", ErrIDIsAlreadyAssigned, w.id)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	w.id = id
	return nil
}

// ChangeStatus moves the order to the target status if the policy allows it.
// A nil policy behaves as PermissivePolicy.
//
// The conflict reason is left untouched: it records what screening found at
// creation and stays readable after a manager overrides the outcome.
func (w *WorkOrder) ChangeStatus(target Status, policy TransitionPolicy) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if policy == nil {
		policy = PermissivePolicy{}
	}

	if err := policy.Allow(w.status, target); err != nil {
		return err
	}

	w.status = target
	return nil
}

func (w *WorkOrder) setSite(site kernel.Zone) error {
	if err := site.Validate(); err != nil {
		return err
	}
	w.site = site
	return nil
}

func (w *WorkOrder) setScheduledTime(scheduledTime time.Time) error {
	if scheduledTime.IsZero() {
		return errs.NewValueIsRequiredError("scheduledTime")
	}
	w.scheduledTime = scheduledTime
	return nil
}

// screen sets the initial status from the detector outcome.
func (w *WorkOrder) screen(conflictReason string) error {
	conflictReason = strings.TrimSpace(conflictReason)
	if conflictReason == "" {
		w.status = PendingApproval
		w.conflictReason = NoConflictReason
		return nil
	}
	if conflictReason == NoConflictReason {
		return errs.NewValueIsInvalidErrorWithCause(
			"conflictReason", fmt.Errorf("%q cannot describe a conflict", NoConflictReason))
	}

	w.status = ConflictDetected
	w.conflictReason = conflictReason
	return nil
}

func (w *WorkOrder) setStatusAndReason(status Status, conflictReason string) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(conflictReason) == "" {
		return errs.NewValueIsRequiredError("conflictReason")
	}
	w.status = status
	w.conflictReason = conflictReason
	return nil
}
