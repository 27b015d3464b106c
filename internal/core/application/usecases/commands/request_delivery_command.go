package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrRequestDeliveryCommandIsNotConstructed = errors.New(
		"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
	)
)

// RequestDeliveryCommand represents a custom delivery request: a requester
// asks for a single named item to be fetched without placing a catalog order.
//
// Example:
//
//	cmd, err := NewRequestDeliveryCommand(RequestDeliveryParams{
//	    RequestID:      kernel.NewUUID(),
//	    RestaurantName: "Burger Land",
//	    PickupPoint:    "Burger Land",
//	    DropOffPoint:   "Dormitory 12",
//	    FoodName:       "Double Cheese Burger",
//	    Price:          85000,
//	})
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	requestID      kernel.UUID
	restaurantName string
	pickupPoint    string
	dropOffPoint   string
	foodName       string
	price          int64

	guard guard.ConstructorGuard
}

// RequestDeliveryParams carries the inputs for NewRequestDeliveryCommand.
type RequestDeliveryParams struct {
	RequestID      kernel.UUID
	RestaurantName string
	PickupPoint    string
	DropOffPoint   string
	FoodName       string
	Price          int64
}

// NewRequestDeliveryCommand creates a command to post a custom delivery
// request. Validates the identifier, both endpoints, the item name, and that
// the price is positive.
func NewRequestDeliveryCommand(p RequestDeliveryParams) (RequestDeliveryCommand, error) {
	requestCommand := RequestDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestCommand.setRequestID(p.RequestID),
		requestCommand.setPickupPoint(p.PickupPoint),
		requestCommand.setDropOffPoint(p.DropOffPoint),
		requestCommand.setFoodName(p.FoodName),
		requestCommand.setPrice(p.Price),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	requestCommand.restaurantName = p.RestaurantName

	return requestCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestDeliveryCommandIsNotConstructed if validation fails.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// RequestID returns the unique identifier of the request.
func (c RequestDeliveryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RestaurantName returns the restaurant the item is fetched from.
func (c RequestDeliveryCommand) RestaurantName() string {
	return c.restaurantName
}

// PickupPoint returns where the courier collects the item.
func (c RequestDeliveryCommand) PickupPoint() string {
	return c.pickupPoint
}

// DropOffPoint returns where the courier delivers the item.
func (c RequestDeliveryCommand) DropOffPoint() string {
	return c.dropOffPoint
}

// FoodName returns the requested item.
func (c RequestDeliveryCommand) FoodName() string {
	return c.foodName
}

// Price returns the item price the courier earnings are derived from.
func (c RequestDeliveryCommand) Price() int64 {
	return c.price
}

func (c *RequestDeliveryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RequestDeliveryCommand) setPickupPoint(pickupPoint string) error {
	if pickupPoint == "" {
		return errs.NewValueIsRequiredError("pickup point")
	}

	c.pickupPoint = pickupPoint
	return nil
}

func (c *RequestDeliveryCommand) setDropOffPoint(dropOffPoint string) error {
	if dropOffPoint == "" {
		return errs.NewValueIsRequiredError("drop-off point")
	}

	c.dropOffPoint = dropOffPoint
	return nil
}

func (c *RequestDeliveryCommand) setFoodName(foodName string) error {
	if foodName == "" {
		return errs.NewValueIsRequiredError("food name")
	}

	c.foodName = foodName
	return nil
}

func (c *RequestDeliveryCommand) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
