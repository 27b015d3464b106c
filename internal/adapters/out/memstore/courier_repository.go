package memstore

import (
	"context"

	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// CourierRepository implements ports.CourierRepository over the in-memory store.
type CourierRepository struct {
	store *Store
	inTx  bool
}

// Add saves a new courier profile.
func (r *CourierRepository) Add(_ context.Context, profile *courier.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := profile.ID().Bytes()
	if _, exists := r.store.couriers[key]; exists {
		return errs.NewConflictError("courierId", profile.ID().String(), "courier already exists")
	}

	r.store.couriers[key] = courierToRecord(profile)
	return nil
}

// Update saves an existing courier profile.
func (r *CourierRepository) Update(_ context.Context, profile *courier.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := profile.ID().Bytes()
	if _, exists := r.store.couriers[key]; !exists {
		return errs.NewObjectNotFoundError("courierId", profile.ID().String())
	}

	r.store.couriers[key] = courierToRecord(profile)
	return nil
}

// Get retrieves a courier profile by ID.
func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	rec, exists := r.store.couriers[id.Bytes()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("courierId", id.String())
	}

	return courier.NewProfile(
		rec.id,
		rec.fullName,
		rec.profilePictureURL,
		rec.bankCardNumber,
		rec.phone,
		rec.vehicle,
		rec.rating,
	)
}

func courierToRecord(p *courier.Profile) courierRecord {
	return courierRecord{
		id:                p.ID(),
		fullName:          p.FullName(),
		profilePictureURL: p.ProfilePictureURL(),
		bankCardNumber:    p.BankCardNumber(),
		phone:             p.Phone(),
		vehicle:           p.Vehicle(),
		rating:            p.Rating(),
	}
}
