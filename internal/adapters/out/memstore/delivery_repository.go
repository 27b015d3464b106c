package memstore

import (
	"context"
	"sort"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// DeliveryRepository implements ports.DeliveryRepository over the in-memory store.
type DeliveryRepository struct {
	store *Store
	inTx  bool
}

// Add saves a new active delivery.
func (r *DeliveryRepository) Add(_ context.Context, aggregate *delivery.ActiveDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := aggregate.ID().Bytes()
	if _, exists := r.store.deliveries[key]; exists {
		return errs.NewConflictError("deliveryId", aggregate.ID().String(), "delivery already exists")
	}

	r.store.deliveries[key] = deliveryToRecord(aggregate)
	return nil
}

// Update saves an existing active delivery.
func (r *DeliveryRepository) Update(_ context.Context, aggregate *delivery.ActiveDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := aggregate.ID().Bytes()
	if _, exists := r.store.deliveries[key]; !exists {
		return errs.NewObjectNotFoundError("deliveryId", aggregate.ID().String())
	}

	r.store.deliveries[key] = deliveryToRecord(aggregate)
	return nil
}

// Get retrieves an active delivery by its order identifier.
func (r *DeliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.ActiveDelivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	rec, exists := r.store.deliveries[id.Bytes()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("deliveryId", id.String())
	}

	return recordToDelivery(rec)
}

// GetAll retrieves every delivery in flight, ordered by identifier for a
// stable listing.
func (r *DeliveryRepository) GetAll(_ context.Context) ([]*delivery.ActiveDelivery, error) {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	all := make([]*delivery.ActiveDelivery, 0, len(r.store.deliveries))
	for _, rec := range r.store.deliveries {
		d, err := recordToDelivery(rec)
		if err != nil {
			return nil, err
		}
		all = append(all, d)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID().String() < all[j].ID().String()
	})
	return all, nil
}

// Remove deletes an active delivery. Removing an absent delivery is a no-op.
func (r *DeliveryRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	delete(r.store.deliveries, id.Bytes())
	return nil
}

func deliveryToRecord(d *delivery.ActiveDelivery) deliveryRecord {
	return deliveryRecord{
		job:           d.Job(),
		courierID:     d.CourierID(),
		customerName:  d.CustomerName(),
		customerPhone: d.CustomerPhone(),
		stage:         d.Stage(),
		customerPaid:  d.IsCustomerPaid(),
	}
}

func recordToDelivery(rec deliveryRecord) (*delivery.ActiveDelivery, error) {
	return delivery.RestoreActiveDelivery(
		rec.job,
		rec.courierID,
		rec.customerName,
		rec.customerPhone,
		rec.stage,
		rec.customerPaid,
	)
}
