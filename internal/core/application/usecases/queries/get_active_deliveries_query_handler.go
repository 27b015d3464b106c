package queries

import (
	"context"

	"campuseats/internal/core/domain/model/delivery"
)

// DeliveryReader is the read port for in-flight deliveries.
type DeliveryReader interface {
	GetAll(ctx context.Context) ([]*delivery.ActiveDelivery, error)
}

// GetActiveDeliveriesQueryHandler lists the deliveries currently in flight.
// The listing is deliberately unfiltered: every courier sees the full feed
// and picks out their own rows by CourierID on the client side.
type GetActiveDeliveriesQueryHandler struct {
	deliveries DeliveryReader
}

// NewGetActiveDeliveriesQueryHandler creates a handler for in-flight delivery
// listings.
func NewGetActiveDeliveriesQueryHandler(deliveries DeliveryReader) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{deliveries: deliveries}
}

// Handle executes the listing.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.deliveries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]GetActiveDeliveriesQueryResponse, 0, len(active))
	for _, d := range active {
		job := d.Job()
		views = append(views, GetActiveDeliveriesQueryResponse{
			ID:             d.ID(),
			CourierID:      d.CourierID(),
			RestaurantName: job.RestaurantName(),
			PickupPoint:    job.PickupPoint(),
			DropOffPoint:   job.DropOffPoint(),
			ItemsSummary:   job.ItemsSummary(),
			Earnings:       job.Earnings(),
			CustomerName:   d.CustomerName(),
			CustomerPhone:  d.CustomerPhone(),
			Stage:          d.Stage().String(),
			CustomerPaid:   d.IsCustomerPaid(),
			IsRequest:      job.IsRequest(),
		})
	}

	return views, nil
}
