package queries

import (
	"context"
	"math"
	"time"

	"campuseats/internal/core/domain/model/delivery"
)

// JobReader is the read port for the open job board.
type JobReader interface {
	GetAllOpen(ctx context.Context, now time.Time) ([]delivery.Job, error)
}

// ListOpenJobsQueryHandler lists the claimable jobs with their countdowns.
type ListOpenJobsQueryHandler struct {
	jobs JobReader
}

// NewListOpenJobsQueryHandler creates a handler for open job listings.
func NewListOpenJobsQueryHandler(jobs JobReader) ListOpenJobsQueryHandler {
	return ListOpenJobsQueryHandler{jobs: jobs}
}

// Handle executes the listing. SecondsLeft is computed against the same
// instant used for filtering, so a returned job always has a positive countdown.
func (h ListOpenJobsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenJobsQuery,
) ([]ListOpenJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	jobs, err := h.jobs.GetAllOpen(ctx, now)
	if err != nil {
		return nil, err
	}

	views := make([]ListOpenJobsQueryResponse, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, ListOpenJobsQueryResponse{
			ID:             job.ID(),
			RestaurantName: job.RestaurantName(),
			PickupPoint:    job.PickupPoint(),
			DropOffPoint:   job.DropOffPoint(),
			ItemsSummary:   job.ItemsSummary(),
			Earnings:       job.Earnings(),
			ExpiresAt:      job.ExpiresAt(),
			SecondsLeft:    int(math.Ceil(job.ExpiresAt().Sub(now).Seconds())),
			Notes:          job.Notes(),
			Phone:          job.Phone(),
			IsRequest:      job.IsRequest(),
		})
	}

	return views, nil
}
