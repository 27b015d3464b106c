package commands

import (
	"context"

	"campuseats/internal/core/domain/services"
)

// CourierConfirmPaymentCommandHandler completes the payment handshake.
// Moves the order to PaymentConfirmed, stores the delivery ETA, and advances
// the courier's delivery view to the AtRestaurant stage.
//
// The aggregate enforces the handshake order: acknowledging before the
// requester confirmed fails with an invalid transition error.
type CourierConfirmPaymentCommandHandler struct {
	uowFactory   OrderDeliveryUoWFactory
	etaEstimator services.ETAEstimator
}

// NewCourierConfirmPaymentCommandHandler creates a handler for the courier's
// half of the payment handshake.
func NewCourierConfirmPaymentCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	etaEstimator services.ETAEstimator,
) CourierConfirmPaymentCommandHandler {
	return CourierConfirmPaymentCommandHandler{
		uowFactory:   uowFactory,
		etaEstimator: etaEstimator,
	}
}

// Handle processes the courier's acknowledgement.
func (h *CourierConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd CourierConfirmPaymentCommand) error {
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
	confirmedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	destination := ""
	if dest := confirmedOrder.Destination(); dest != nil {
		destination = dest.Name()
	}

	if err = confirmedOrder.ConfirmPayment(h.etaEstimator.EstimateMinutes(destination)); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, confirmedOrder); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	activeDelivery, err := deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	activeDelivery.ConfirmPayment()
	if err = deliveryRepo.Update(ctx, activeDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
