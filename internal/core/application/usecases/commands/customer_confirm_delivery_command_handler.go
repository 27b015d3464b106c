package commands

import (
	"context"
)

// CustomerConfirmDeliveryCommandHandler settles the hand-off handshake.
// Moves the order to the terminal Delivered status and removes the active
// delivery from the courier's board.
//
// The aggregate enforces the handshake order: confirming receipt before the
// courier reported the hand-off fails with an invalid transition error.
type CustomerConfirmDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewCustomerConfirmDeliveryCommandHandler creates a handler for receipt
// confirmations.
func NewCustomerConfirmDeliveryCommandHandler(uowFactory OrderDeliveryUoWFactory) CustomerConfirmDeliveryCommandHandler {
	return CustomerConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt confirmation.
func (h *CustomerConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd CustomerConfirmDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	deliveredOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deliveredOrder.Complete(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
