package deliveryrepo

import (
	"context"
	"errors"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM active delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new active delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.ActiveDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing active delivery to the database.
// The claimed job is immutable, so only the stage and the customer-paid flag
// are written.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.ActiveDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"stage":         dto.Stage,
			"customer_paid": dto.CustomerPaid,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active delivery by its order identifier.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.ActiveDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery in flight, ordered by identifier for a
// stable listing.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.ActiveDelivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.ActiveDelivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// Remove deletes an active delivery. Removing an absent delivery is not an error.
func (r *GormDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes()).Error
}
