// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier profile aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier profiles.
type CourierDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName          string    `gorm:"type:varchar(255);not null"`
	ProfilePictureURL string    `gorm:"type:text"`
	BankCardNumber    string    `gorm:"type:varchar(32)"`
	Phone             string    `gorm:"type:varchar(32)"`
	Vehicle           string    `gorm:"type:varchar(255)"`
	Rating            float64   `gorm:"type:numeric(3,2);not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier profile to its database representation.
func fromDomain(profile *courier.Profile) CourierDTO {
	return CourierDTO{
		ID:                profile.ID().Bytes(),
		FullName:          profile.FullName(),
		ProfilePictureURL: profile.ProfilePictureURL(),
		BankCardNumber:    profile.BankCardNumber(),
		Phone:             profile.Phone(),
		Vehicle:           profile.Vehicle(),
		Rating:            profile.Rating(),
	}
}

// toDomain converts a database DTO to a courier profile using NewProfile.
func toDomain(dto CourierDTO) (*courier.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.NewProfile(
		id,
		dto.FullName,
		dto.ProfilePictureURL,
		dto.BankCardNumber,
		dto.Phone,
		dto.Vehicle,
		dto.Rating,
	)
}
