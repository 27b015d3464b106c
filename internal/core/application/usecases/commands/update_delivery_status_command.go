package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
)

// UpdateDeliveryStatusCommand represents a courier's progress report on an
// active delivery: picked up, on the way, or handed off.
//
// AwaitingPayment and AtRestaurant are not reportable here; only the payment
// handshake commands move a delivery through them.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	stage      delivery.Stage

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a progress report command.
// Accepts only the stages a courier may report directly.
func NewUpdateDeliveryStatusCommand(deliveryID kernel.UUID, stage delivery.Stage) (UpdateDeliveryStatusCommand, error) {
	updateCommand := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setDeliveryID(deliveryID),
		updateCommand.setStage(stage),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being reported on.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Stage returns the reported delivery stage.
func (c UpdateDeliveryStatusCommand) Stage() delivery.Stage {
	return c.stage
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStage(stage delivery.Stage) error {
	switch stage {
	case delivery.StagePickedUp,
		delivery.StageOnTheWay,
		delivery.StageAwaitingCustomerConfirmation:
		c.stage = stage
		return nil
	default:
		return errs.NewValueIsInvalidError("stage")
	}
}
