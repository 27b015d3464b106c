package queries

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// OrderReader is the read port for single-order lookups.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler resolves a single order into its read model.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. An unknown identifier surfaces as the reader's
// not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines := make([]GetOrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, GetOrderLineResponse{
			ItemID:    line.ItemID(),
			Name:      line.Name(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
			Total:     line.Total(),
		})
	}

	destination := ""
	if dest := o.Destination(); dest != nil {
		destination = dest.Name()
	}

	return GetOrderQueryResponse{
		ID:                 o.ID(),
		Code:               o.Code().String(),
		Status:             o.Status().String(),
		RestaurantName:     o.RestaurantName(),
		Lines:              lines,
		Subtotal:           o.Subtotal(),
		DeliveryFee:        o.DeliveryFee(),
		Discount:           o.Discount(),
		Total:              o.Total(),
		PromoCode:          o.PromoCode(),
		Destination:        destination,
		DiningHall:         o.DiningHall(),
		Notes:              o.Notes(),
		Phone:              o.Phone(),
		CourierID:          o.Courier(),
		CustomerPaid:       o.IsCustomerPaid(),
		CancellationReason: o.CancellationReason(),
		ETAMinutes:         o.ETAMinutes(),
		CreatedAt:          o.CreatedAt(),
	}, nil
}
