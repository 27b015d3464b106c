// Package jobrepo provides data transfer objects and mapping functions for job board persistence.
// This package implements the job board port over a relational table, handling
// the conversion between job value objects and database rows.
package jobrepo

import (
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting open jobs.
// Rows only ever get inserted and deleted; a claim or an expiry sweep removes
// the row instead of flagging it.
type JobDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantName string    `gorm:"type:varchar(255)"`
	PickupPoint    string    `gorm:"type:varchar(255);not null"`
	DropOffPoint   string    `gorm:"type:varchar(255);not null"`
	ItemsSummary   string    `gorm:"type:text;not null"`
	Earnings       int64     `gorm:"type:bigint;not null"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	Notes          string    `gorm:"type:text"`
	Phone          string    `gorm:"type:varchar(32)"`
	IsRequest      bool      `gorm:"not null"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job value object to its database representation.
func fromDomain(job delivery.Job) JobDTO {
	return JobDTO{
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
	}
}

// toDomain converts a database DTO to a job value object using RestoreJob.
func toDomain(dto JobDTO) (delivery.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return delivery.Job{}, err
	}

	return delivery.RestoreJob(delivery.RestoreJobParams{
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
}
