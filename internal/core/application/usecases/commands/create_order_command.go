package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new food order.
// Carries the cart, the routing choice (courier destination or self-pickup
// dining hall), and an optional promo code evaluated during handling.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    OrderID:        orderID,
//	    RequesterID:    "user-42",
//	    RestaurantName: "Burger Land",
//	    Lines:          lines,
//	    DeliveryFee:    15000,
//	    Destination:    &dorm12,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, promoEvaluator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requesterID    string
	restaurantName string
	lines          []order.Line
	deliveryFee    int64
	destination    *kernel.Location
	diningHall     string
	notes          string
	phone          string
	promoCode      string

	guard guard.ConstructorGuard
}

// CreateOrderParams carries the inputs for NewCreateOrderCommand.
type CreateOrderParams struct {
	OrderID        kernel.UUID
	RequesterID    string
	RestaurantName string
	Lines          []order.Line
	DeliveryFee    int64
	Destination    *kernel.Location
	DiningHall     string
	Notes          string
	Phone          string
	PromoCode      string
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the requester and restaurant are set,
// the cart is not empty, and the delivery fee is not negative.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(p.OrderID),
		orderCommand.setRequesterID(p.RequesterID),
		orderCommand.setRestaurantName(p.RestaurantName),
		orderCommand.setLines(p.Lines),
		orderCommand.setDeliveryFee(p.DeliveryFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.destination = p.Destination
	orderCommand.diningHall = p.DiningHall
	orderCommand.notes = p.Notes
	orderCommand.phone = p.Phone
	orderCommand.promoCode = p.PromoCode

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the opaque identifier of the requester.
func (c CreateOrderCommand) RequesterID() string {
	return c.requesterID
}

// RestaurantName returns the restaurant preparing the order.
func (c CreateOrderCommand) RestaurantName() string {
	return c.restaurantName
}

// Lines returns the cart lines.
func (c CreateOrderCommand) Lines() []order.Line {
	return c.lines
}

// DeliveryFee returns the delivery fee before any free-delivery promo.
func (c CreateOrderCommand) DeliveryFee() int64 {
	return c.deliveryFee
}

// Destination returns the delivery destination, nil for self-pickup.
func (c CreateOrderCommand) Destination() *kernel.Location {
	return c.destination
}

// DiningHall returns the self-pickup dining hall, empty for courier delivery.
func (c CreateOrderCommand) DiningHall() string {
	return c.diningHall
}

// Notes returns the special instructions for the courier.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Phone returns the requester's contact phone.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// PromoCode returns the promo code to apply, empty if none.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID string) error {
	if requesterID == "" {
		return errs.NewValueIsRequiredError("requester id")
	}

	c.requesterID = requesterID
	return nil
}

func (c *CreateOrderCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}

	c.restaurantName = restaurantName
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(deliveryFee int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("delivery fee")
	}

	c.deliveryFee = deliveryFee
	return nil
}
