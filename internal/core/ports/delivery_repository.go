package ports

import (
	"context"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for active deliveries.
// An active delivery exists from the moment a courier claims a job until the
// customer confirms the hand-off.
type DeliveryRepository interface {
	// Add persists a new active delivery.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.ActiveDelivery) error

	// Update persists changes to an existing active delivery.
	Update(ctx context.Context, aggregate *delivery.ActiveDelivery) error

	// Get retrieves an active delivery by the identifier of its order.
	Get(ctx context.Context, id kernel.UUID) (*delivery.ActiveDelivery, error)

	// GetAll retrieves every active delivery currently in flight.
	GetAll(ctx context.Context) ([]*delivery.ActiveDelivery, error)

	// Remove deletes the active delivery once the hand-off is confirmed or the
	// order is cancelled. Removing an absent delivery is not an error.
	Remove(ctx context.Context, id kernel.UUID) error
}
