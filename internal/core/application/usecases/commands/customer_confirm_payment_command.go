package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrCustomerConfirmPaymentCommandIsNotConstructed = errors.New(
		"CustomerConfirmPaymentCommand must be created via NewCustomerConfirmPaymentCommand constructor",
	)
)

// CustomerConfirmPaymentCommand is the requester's half of the payment
// handshake: "I have paid". It flags the order but does not advance its
// status; the courier's acknowledgement does that.
type CustomerConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomerConfirmPaymentCommand creates the requester's payment confirmation.
func NewCustomerConfirmPaymentCommand(orderID kernel.UUID) (CustomerConfirmPaymentCommand, error) {
	confirmCommand := CustomerConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return CustomerConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCustomerConfirmPaymentCommandIsNotConstructed if validation fails.
func (c CustomerConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCustomerConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c CustomerConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CustomerConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
