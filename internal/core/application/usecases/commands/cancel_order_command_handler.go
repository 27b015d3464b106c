package commands

import (
	"context"
)

// CancelOrderCommandHandler handles requester-side order cancellation.
// Moves the order to CancelledByUser and tears down its projections: the open
// job (if still posted) and the active delivery (if a courier already claimed).
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
// The status transition is validated by the aggregate; a terminal order fails
// with an invalid transition error and nothing is removed.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.CancelByUser(cmd.Reason()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.JobBoard().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
