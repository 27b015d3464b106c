package memstore

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the in-memory store.
type OrderRepository struct {
	store *Store
	inTx  bool
}

// Add saves a new order.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := aggregate.ID().Bytes()
	if _, exists := r.store.orders[key]; exists {
		return errs.NewConflictError("orderId", aggregate.ID().String(), "order already exists")
	}

	r.store.orders[key] = orderToRecord(aggregate)
	return nil
}

// Update saves an existing order.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	key := aggregate.ID().Bytes()
	if _, exists := r.store.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.store.orders[key] = orderToRecord(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	rec, exists := r.store.orders[id.Bytes()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return order.RestoreOrder(rec.params)
}

// orderToRecord snapshots an aggregate into its persisted form. Going through
// the getters copies the cart, so later mutations of the aggregate do not
// reach the store.
func orderToRecord(o *order.Order) orderRecord {
	return orderRecord{params: order.RestoreOrderParams{
		ID:                 o.ID(),
		Code:               o.Code(),
		RequesterID:        o.RequesterID(),
		RestaurantName:     o.RestaurantName(),
		Lines:              o.Lines(),
		DeliveryFee:        o.DeliveryFee(),
		Discount:           o.Discount(),
		PromoCode:          o.PromoCode(),
		Destination:        o.Destination(),
		DiningHall:         o.DiningHall(),
		Notes:              o.Notes(),
		Phone:              o.Phone(),
		Status:             o.Status(),
		CourierID:          o.Courier(),
		CustomerPaid:       o.IsCustomerPaid(),
		CancellationReason: o.CancellationReason(),
		ETAMinutes:         o.ETAMinutes(),
		CreatedAt:          o.CreatedAt(),
	}}
}
