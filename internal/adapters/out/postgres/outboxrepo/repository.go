package outboxrepo

import (
	"context"

	"workorders/internal/core/domain/model/notification"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements ports.NotificationOutbox using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts a pending notification.
func (r *GormOutboxRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the delivery progress of a notification.
func (r *GormOutboxRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("attempts", "delivered_at", "last_error").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", dto.ID)
	}
	return nil
}

// GetPending returns undelivered notifications below the attempt limit, oldest first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit, maxAttempts int) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("delivered_at IS NULL AND attempts < ?", maxAttempts).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		pending = append(pending, n)
	}

	return pending, nil
}
