// Package workorderrepo maps work order aggregates to the work_orders table.
package workorderrepo

import (
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
)

// WorkOrderDTO is the database row of a work order. Status is stored as its
// wire literal so the table reads the same as the API.
type WorkOrderDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Description    string    `gorm:"not null;default:''"`
	Latitude       float64   `gorm:"not null"`
	Longitude      float64   `gorm:"not null"`
	RadiusMeters   float64   `gorm:"not null"`
	ScheduledTime  time.Time `gorm:"not null;index"`
	Status         string    `gorm:"size:32;not null;index"`
	ConflictReason string    `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	site := wo.Site()
	return WorkOrderDTO{
		ID:             wo.ID(),
		Description:    wo.Description(),
		Latitude:       site.Center().Latitude(),
		Longitude:      site.Center().Longitude(),
		RadiusMeters:   site.RadiusMeters(),
		ScheduledTime:  wo.ScheduledTime().UTC(),
		Status:         wo.Status().String(),
		ConflictReason: wo.ConflictReason(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	site, err := kernel.NewZone(loc, dto.RadiusMeters)
	if err != nil {
		return nil, err
	}

	status, err := workorder.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		dto.ID,
		dto.Description,
		site,
		dto.ScheduledTime.UTC(),
		status,
		dto.ConflictReason,
	)
}
