// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile to storage.
	// The profile must be valid and not already exist in the repository.
	Add(ctx context.Context, profile *courier.Profile) error

	// Update persists changes to an existing courier profile.
	// The profile must exist in the repository and be valid.
	Update(ctx context.Context, profile *courier.Profile) error

	// Get retrieves a courier profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error)
}
