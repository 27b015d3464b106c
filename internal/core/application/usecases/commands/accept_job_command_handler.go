package commands

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/delivery"
)

// defaultCustomerName is the requester display name shown to couriers until
// accounts carry real profiles.
const defaultCustomerName = "Test User"

// AcceptJobCommandHandler settles a courier's claim on an open job.
//
// The claim is exactly-once: the job board's Take removes the job atomically,
// so of any number of concurrent claims on the same job at most one reaches
// the commit. The losers observe a taken-or-expired conflict and the job
// board and order are left untouched for them.
type AcceptJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptJobCommandHandler creates a handler for job claims.
// Requires the full UoWFactory: a claim touches the board, the order,
// and the active delivery tracker in one transaction.
func NewAcceptJobCommandHandler(uowFactory UoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim.
//
// Takes the job off the board, binds the courier to the backing order (regular
// jobs only; custom requests have no order), and opens the active delivery in
// the AwaitingPayment stage. Everything commits or nothing does.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	job, err := uow.JobBoard().Take(ctx, cmd.JobID(), time.Now())
	if err != nil {
		return err
	}

	customerPhone := job.Phone()
	if !job.IsRequest() {
		orderRepo := uow.OrderRepository()
		claimedOrder, orderErr := orderRepo.Get(ctx, job.ID())
		if orderErr != nil {
			return orderErr
		}

		if orderErr = claimedOrder.AssignCourier(cmd.CourierID()); orderErr != nil {
			return orderErr
		}
		if orderErr = orderRepo.Update(ctx, claimedOrder); orderErr != nil {
			return orderErr
		}
		customerPhone = claimedOrder.Phone()
	}

	activeDelivery, err := delivery.NewActiveDelivery(job, cmd.CourierID(), defaultCustomerName, customerPhone)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, activeDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
