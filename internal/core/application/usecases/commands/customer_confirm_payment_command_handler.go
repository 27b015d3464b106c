package commands

import (
	"context"
)

// CustomerConfirmPaymentCommandHandler records the requester's payment claim
// on the order and mirrors it into the courier's active delivery view.
type CustomerConfirmPaymentCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewCustomerConfirmPaymentCommandHandler creates a handler for the
// requester's half of the payment handshake.
func NewCustomerConfirmPaymentCommandHandler(uowFactory OrderDeliveryUoWFactory) CustomerConfirmPaymentCommandHandler {
	return CustomerConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flags the order as customer-paid. Re-confirming is a no-op success.
// The order stays in AwaitingPayment until the courier acknowledges.
func (h *CustomerConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd CustomerConfirmPaymentCommand) error {
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
	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = paidOrder.MarkCustomerPaid(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, paidOrder); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	activeDelivery, err := deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	activeDelivery.MarkCustomerPaid()
	if err = deliveryRepo.Update(ctx, activeDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
