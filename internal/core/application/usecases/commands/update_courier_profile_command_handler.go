package commands

import (
	"context"
)

// UpdateCourierProfileCommandHandler applies partial changes to a stored
// courier profile.
type UpdateCourierProfileCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierProfileCommandHandler creates a handler for courier profile
// updates.
func NewUpdateCourierProfileCommandHandler(uowFactory CourierUoWFactory) UpdateCourierProfileCommandHandler {
	return UpdateCourierProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the profile, applies the changes, and persists the result.
// A rejected change rolls back without touching the stored profile.
func (h *UpdateCourierProfileCommandHandler) Handle(ctx context.Context, cmd UpdateCourierProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	profile, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = profile.Update(cmd.Changes()); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
