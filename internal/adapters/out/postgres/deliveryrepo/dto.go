// Package deliveryrepo provides data transfer objects and mapping functions for
// active delivery persistence. This package implements the repository pattern for
// the active delivery aggregate, handling the conversion between domain entities
// and database representations.
package deliveryrepo

import (
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting active deliveries.
// The claimed job is flattened into the row because jobs are immutable after
// the claim; only the stage and the customer-paid flag ever change.
type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantName string    `gorm:"type:varchar(255)"`
	PickupPoint    string    `gorm:"type:varchar(255);not null"`
	DropOffPoint   string    `gorm:"type:varchar(255);not null"`
	ItemsSummary   string    `gorm:"type:text;not null"`
	Earnings       int64     `gorm:"type:bigint;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	Notes          string    `gorm:"type:text"`
	Phone          string    `gorm:"type:varchar(32)"`
	IsRequest      bool      `gorm:"not null"`
	CourierID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName   string    `gorm:"type:varchar(255)"`
	CustomerPhone  string    `gorm:"type:varchar(32)"`
	Stage          int       `gorm:"type:int;not null"`
	CustomerPaid   bool      `gorm:"not null"`
}

// TableName specifies the database table name for active delivery entities.
// Overrides GORM's default naming convention to use "active_deliveries".
func (DeliveryDTO) TableName() string {
	return "active_deliveries"
}

// fromDomain converts an active delivery aggregate to its database representation.
func fromDomain(d *delivery.ActiveDelivery) DeliveryDTO {
	job := d.Job()
	return DeliveryDTO{
		ID:             job.ID().Bytes(),
		RestaurantName: job.RestaurantName(),
		PickupPoint:    job.PickupPoint(),
		DropOffPoint:   job.DropOffPoint(),
		ItemsSummary:   job.ItemsSummary(),
		Earnings:       job.Earnings(),
		ExpiresAt:      job.ExpiresAt(),
		Notes:          job.Notes(),
		Phone:          job.Phone(),
		IsRequest:      job.IsRequest(),
		CourierID:      d.CourierID().Bytes(),
		CustomerName:   d.CustomerName(),
		CustomerPhone:  d.CustomerPhone(),
		Stage:          int(d.Stage()),
		CustomerPaid:   d.IsCustomerPaid(),
	}
}

// toDomain converts a database DTO to an active delivery aggregate.
// Rebuilds the claimed job first, then the aggregate via RestoreActiveDelivery.
func toDomain(dto DeliveryDTO) (*delivery.ActiveDelivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	job, err := delivery.RestoreJob(delivery.RestoreJobParams{
		ID:             id,
		RestaurantName: dto.RestaurantName,
		PickupPoint:    dto.PickupPoint,
		DropOffPoint:   dto.DropOffPoint,
		ItemsSummary:   dto.ItemsSummary,
		Earnings:       dto.Earnings,
		ExpiresAt:      dto.ExpiresAt,
		Notes:          dto.Notes,
		Phone:          dto.Phone,
		IsRequest:      dto.IsRequest,
	})
	if err != nil {
		return nil, err
	}

	return delivery.RestoreActiveDelivery(
		job,
		courierID,
		dto.CustomerName,
		dto.CustomerPhone,
		delivery.Stage(dto.Stage),
		dto.CustomerPaid,
	)
}
