// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Handlers read through narrow repository ports rather than the database
// directly, so the same read side serves both the in-memory and the Postgres
// backend.
package queries

import (
	"errors"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full lifecycle state.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(orderReader)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderLineResponse is one cart line in the order read model.
type GetOrderLineResponse struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice int64
	Total     int64
}

// GetOrderQueryResponse is the order read model returned to callers.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	Code               string
	Status             string
	RestaurantName     string
	Lines              []GetOrderLineResponse
	Subtotal           int64
	DeliveryFee        int64
	Discount           int64
	Total              int64
	PromoCode          string
	Destination        string
	DiningHall         string
	Notes              string
	Phone              string
	CourierID          *kernel.UUID
	CustomerPaid       bool
	CancellationReason string
	ETAMinutes         int
	CreatedAt          time.Time
}
