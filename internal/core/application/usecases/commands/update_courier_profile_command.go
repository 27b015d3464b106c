package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrUpdateCourierProfileCommandIsNotConstructed = errors.New(
		"UpdateCourierProfileCommand must be created via NewUpdateCourierProfileCommand constructor",
	)
)

// UpdateCourierProfileCommand represents a partial update to a courier's
// profile. Only the fields set in Changes are touched.
type UpdateCourierProfileCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	changes   courier.ProfileChanges

	guard guard.ConstructorGuard
}

// NewUpdateCourierProfileCommand creates a profile update command.
// Field-level validation happens in the aggregate so that a rejected change
// leaves the stored profile untouched.
func NewUpdateCourierProfileCommand(
	courierID kernel.UUID,
	changes courier.ProfileChanges,
) (UpdateCourierProfileCommand, error) {
	updateCommand := UpdateCourierProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := updateCommand.setCourierID(courierID); err != nil {
		return UpdateCourierProfileCommand{}, err
	}
	updateCommand.changes = changes

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCourierProfileCommandIsNotConstructed if validation fails.
func (c UpdateCourierProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierProfileCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier being updated.
func (c UpdateCourierProfileCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Changes returns the partial profile changes to apply.
func (c UpdateCourierProfileCommand) Changes() courier.ProfileChanges {
	return c.changes
}

func (c *UpdateCourierProfileCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
