package commands

import (
	"context"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler applies a courier's progress report.
// Updates the delivery stage and keeps the backing order's status in lockstep:
// pickup and en-route reports hold the order in DeliveryInProgress, a hand-off
// report moves it to AwaitingCustomerConfirmation.
//
// Custom request deliveries have no backing order; only their stage moves.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// progress reports.
func NewUpdateDeliveryStatusCommandHandler(uowFactory OrderDeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress report.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	activeDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if !activeDelivery.Job().IsRequest() {
		if err = h.advanceOrder(ctx, uow, cmd); err != nil {
			return err
		}
	}

	switch cmd.Stage() {
	case delivery.StagePickedUp:
		activeDelivery.MarkPickedUp()
	case delivery.StageOnTheWay:
		activeDelivery.MarkOnTheWay()
	case delivery.StageAwaitingCustomerConfirmation:
		activeDelivery.MarkHandedOff()
	}

	if err = deliveryRepo.Update(ctx, activeDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// advanceOrder mirrors the reported stage onto the order aggregate.
func (h *UpdateDeliveryStatusCommandHandler) advanceOrder(
	ctx context.Context,
	uow OrderDeliveryUoW,
	cmd UpdateDeliveryStatusCommand,
) error {
	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	switch cmd.Stage() {
	case delivery.StagePickedUp, delivery.StageOnTheWay:
		// DeliveryInProgress allows a self-transition, so repeated
		// progress reports stay legal.
		if trackedOrder.Status() != order.DeliveryInProgress {
			if err = trackedOrder.StartDelivery(); err != nil {
				return err
			}
		}
	case delivery.StageAwaitingCustomerConfirmation:
		if err = trackedOrder.AwaitCustomerConfirmation(); err != nil {
			return err
		}
	}

	return orderRepo.Update(ctx, trackedOrder)
}
