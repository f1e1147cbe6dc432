package workorder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTransitionIsNotAllowed is returned when a TransitionPolicy refuses a status change.
var ErrTransitionIsNotAllowed = errors.New("status transition is not allowed")

// TransitionPolicy decides whether a work order may move from one status to another.
// It is the single place where transition legality is decided.
type TransitionPolicy interface {
	Allow(from, to Status) error
}

// PermissivePolicy accepts every transition between valid statuses,
// including a transition to the current status.
type PermissivePolicy struct{}

// Allow only rejects invalid statuses.
func (PermissivePolicy) Allow(from, to Status) error {
	return errors.Join(from.Validate(), to.Validate())
}

// StrictPolicy accepts only the transitions of the approval workflow:
//
//	DRAFT             -> PENDING_APPROVAL
//	PENDING_APPROVAL  -> APPROVED, REJECTED
//	APPROVED          -> IN_PROGRESS
//	IN_PROGRESS       -> COMPLETED
//	CONFLICT_DETECTED -> REJECTED
type StrictPolicy struct{}

func strictTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:            {PendingApproval},
		PendingApproval:  {Approved, Rejected},
		Approved:         {InProgress},
		InProgress:       {Completed},
		ConflictDetected: {Rejected},
	}
}

// Allow returns an error wrapping ErrTransitionIsNotAllowed for any change
// outside the workflow table.
func (StrictPolicy) Allow(from, to Status) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	for _, next := range strictTransitions()[from] {
		if next == to {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, from, to)
}

// PolicyByName resolves a configured policy name ("permissive" or "strict").
// An empty name selects the permissive policy.
func PolicyByName(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "permissive":
		return PermissivePolicy{}, nil
	case "strict":
		return StrictPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown transition policy %q", name)
	}
}
