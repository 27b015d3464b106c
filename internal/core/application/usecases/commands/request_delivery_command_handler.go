package commands

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/delivery"
)

// RequestDeliveryCommandHandler posts a custom delivery request on the job
// board. Request jobs pay 10% of the item price and stay open for two
// minutes; there is no backing order.
type RequestDeliveryCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRequestDeliveryCommandHandler creates a handler for custom delivery
// requests.
func NewRequestDeliveryCommandHandler(uowFactory JobUoWFactory) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle posts the request job.
func (h *RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	job, err := delivery.NewRequestJob(
		cmd.RequestID(),
		cmd.RestaurantName(),
		cmd.PickupPoint(),
		cmd.DropOffPoint(),
		cmd.FoodName(),
		cmd.Price(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobBoard().Add(ctx, job); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
