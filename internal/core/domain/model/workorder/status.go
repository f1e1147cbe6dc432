package workorder

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
//
// Creation only ever yields PendingApproval or ConflictDetected. Every later
// change is requested externally and checked by a TransitionPolicy:
//
//	                        ┌──> Approved ──> InProgress ──> Completed
//	Draft ──> PendingApproval
//	                        └──> Rejected <── ConflictDetected
//
// The diagram is the strict table; the default policy accepts any change.
// Completed and Rejected are terminal by convention only.
//
// The string form of each status is its wire and storage literal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is an order that has not been submitted for approval.
	Draft

	// PendingApproval is a conflict free order waiting for a manager.
	PendingApproval

	// ConflictDetected is an order whose site overlaps a protected asset.
	// It needs human intervention before anything else happens.
	ConflictDetected

	// Approved is an order released to field technicians.
	Approved

	// InProgress is an order a field technician is working on site.
	InProgress

	// Completed is a finished order.
	Completed

	// Rejected is an order a manager denied.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Draft:            "DRAFT",
		PendingApproval:  "PENDING_APPROVAL",
		ConflictDetected: "CONFLICT_DETECTED",
		Approved:         "APPROVED",
		InProgress:       "IN_PROGRESS",
		Completed:        "COMPLETED",
		Rejected:         "REJECTED",
	}
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Draft, PendingApproval, ConflictDetected, Approved, InProgress, Completed, Rejected}
}

// ParseStatus converts a wire literal such as "APPROVED" into a Status.
// Matching is exact; any other input is a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid work order status", s))
}

// Validate checks that the Status is one of the declared values other than Unknown.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire literal of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the lifecycle by convention.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}
