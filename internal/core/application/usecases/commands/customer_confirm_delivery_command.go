package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrCustomerConfirmDeliveryCommandIsNotConstructed = errors.New(
		"CustomerConfirmDeliveryCommand must be created via NewCustomerConfirmDeliveryCommand constructor",
	)
)

// CustomerConfirmDeliveryCommand is the requester's confirmation of final
// receipt. It is the second half of the hand-off handshake: the courier
// reported the drop-off, the requester confirms it happened.
type CustomerConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerConfirmDeliveryCommand creates a receipt confirmation command.
func NewCustomerConfirmDeliveryCommand(orderID kernel.UUID) (CustomerConfirmDeliveryCommand, error) {
	confirmCommand := CustomerConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return CustomerConfirmDeliveryCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCustomerConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c CustomerConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCustomerConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed as received.
func (c CustomerConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CustomerConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
