// Package notification models messages queued for parties affected by a
// conflicting work order. Entries are written to an outbox when a conflict is
// detected and delivered later by a background job.
package notification

import (
	"errors"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned for a Notification not built by a constructor.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// ErrAlreadyDelivered is returned when a delivered notification is touched again.
var ErrAlreadyDelivered = errors.New("notification is already delivered")

// maxErrorLength bounds the stored delivery error.
const maxErrorLength = 512

// Notification is an outbox entry addressed to the owner of a protected asset.
type Notification struct {
	id          kernel.UUID
	recipient   string
	message     string
	createdAt   time.Time
	attempts    int
	deliveredAt *time.Time
	lastError   string

	isConstructed bool
}

// NewNotification creates a pending notification with a fresh id.
func NewNotification(recipient, message string, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), recipient, message, createdAt, 0, nil, "")
}

// RestoreNotification rebuilds a notification loaded from storage.
func RestoreNotification(
	id kernel.UUID,
	recipient, message string,
	createdAt time.Time,
	attempts int,
	deliveredAt *time.Time,
	lastError string,
) (*Notification, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		errList = append(errList, errs.NewValueIsRequiredError("recipient"))
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("createdAt"))
	}
	if attempts < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, nil))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipient:     recipient,
		message:       message,
		createdAt:     createdAt,
		attempts:      attempts,
		deliveredAt:   deliveredAt,
		lastError:     lastError,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID { return n.id }
func (n *Notification) Recipient() string { return n.recipient }
func (n *Notification) Message() string { return n.message }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) Attempts() int { return n.attempts }
func (n *Notification) LastError() string { return n.lastError }
func (n *Notification) IsDelivered() bool { return n.deliveredAt != nil }

func (n *Notification) DeliveredAt() *time.Time {
	if n.deliveredAt == nil {
		return nil
	}
	at := *n.deliveredAt
	return &at
}

// MarkDelivered records a successful delivery attempt.
func (n *Notification) MarkDelivered(at time.Time) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.IsDelivered() {
		return ErrAlreadyDelivered
	}
	n.attempts++
	n.deliveredAt = &at
	n.lastError = ""
	return nil
}

// RecordFailure records a failed delivery attempt and its cause.
func (n *Notification) RecordFailure(cause error) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.IsDelivered() {
		return ErrAlreadyDelivered
	}
	n.attempts++
	n.lastError = ""
	if cause != nil {
		msg := cause.Error()
		if len(msg) > maxErrorLength {
			msg = msg[:maxErrorLength]
		}
		n.lastError = msg
	}
	return nil
}
