package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrCourierConfirmPaymentCommandIsNotConstructed = errors.New(
		"CourierConfirmPaymentCommand must be created via NewCourierConfirmPaymentCommand constructor",
	)
)

// CourierConfirmPaymentCommand is the courier's half of the payment handshake:
// "I have received the payment". It completes the handshake the requester
// opened and moves the order to PaymentConfirmed.
type CourierConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCourierConfirmPaymentCommand creates the courier's payment acknowledgement.
func NewCourierConfirmPaymentCommand(orderID kernel.UUID) (CourierConfirmPaymentCommand, error) {
	confirmCommand := CourierConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return CourierConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCourierConfirmPaymentCommandIsNotConstructed if validation fails.
func (c CourierConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCourierConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is acknowledged.
func (c CourierConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CourierConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
