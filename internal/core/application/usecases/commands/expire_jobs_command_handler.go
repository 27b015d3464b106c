package commands

import (
	"context"
	"time"
)

// ExpireJobsCommandHandler sweeps the job board for jobs past their deadline.
// Expired regular jobs close their backing orders as ExpiredNoCourier; expired
// custom requests simply leave the board.
type ExpireJobsCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewExpireJobsCommandHandler creates a handler for the expiry sweep.
func NewExpireJobsCommandHandler(uowFactory OrderJobUoWFactory) ExpireJobsCommandHandler {
	return ExpireJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one sweep.
// The board hand-off is atomic with the order transitions: a courier claiming
// concurrently either got the job before the sweep took it or finds it gone.
func (h *ExpireJobsCommandHandler) Handle(ctx context.Context, cmd ExpireJobsCommand) error {
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

	expired, err := uow.JobBoard().TakeExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, job := range expired {
		if job.IsRequest() {
			continue
		}

		expiredOrder, orderErr := orderRepo.Get(ctx, job.ID())
		if orderErr != nil {
			return orderErr
		}
		if orderErr = expiredOrder.Expire(); orderErr != nil {
			return orderErr
		}
		if orderErr = orderRepo.Update(ctx, expiredOrder); orderErr != nil {
			return orderErr
		}
	}

	return uow.Commit(ctx)
}
