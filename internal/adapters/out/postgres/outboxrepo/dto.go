// Package outboxrepo stores pending notifications in the notification_outbox table.
package outboxrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/notification"
)

// NotificationDTO is the database row of an outbox entry.
type NotificationDTO struct {
	ID          string     `gorm:"size:36;primaryKey"`
	Recipient   string     `gorm:"not null"`
	Message     string     `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	Attempts    int        `gorm:"not null;default:0"`
	DeliveredAt *time.Time `gorm:"index"`
	LastError   string     `gorm:"size:512;not null;default:''"`
}

func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var deliveredAt *time.Time
	if at := n.DeliveredAt(); at != nil {
		utc := at.UTC()
		deliveredAt = &utc
	}

	return NotificationDTO{
		ID:          n.ID().String(),
		Recipient:   n.Recipient(),
		Message:     n.Message(),
		CreatedAt:   n.CreatedAt().UTC(),
		Attempts:    n.Attempts(),
		DeliveredAt: deliveredAt,
		LastError:   n.LastError(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		dto.Recipient,
		dto.Message,
		dto.CreatedAt.UTC(),
		dto.Attempts,
		dto.DeliveredAt,
		dto.LastError,
	)
}
