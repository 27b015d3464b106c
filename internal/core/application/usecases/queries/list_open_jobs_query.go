package queries

import (
	"errors"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrListOpenJobsQueryIsNotConstructed = errors.New(
		"ListOpenJobsQuery must be created via NewListOpenJobsQuery constructor",
	)
)

// ListOpenJobsQuery retrieves the jobs couriers can claim right now.
// Jobs past their expiry are filtered out even if the expiry sweep has not
// caught up yet, so a courier never sees an unclaimable job.
type ListOpenJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenJobsQuery creates a query for the open job board.
// This is a parameterless query that fetches the whole board.
func NewListOpenJobsQuery() ListOpenJobsQuery {
	return ListOpenJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOpenJobsQueryIsNotConstructed if validation fails.
func (q ListOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenJobsQueryIsNotConstructed)
}

// ListOpenJobsQueryResponse is one claimable job in the read model.
type ListOpenJobsQueryResponse struct {
	ID             kernel.UUID
	RestaurantName string
	PickupPoint    string
	DropOffPoint   string
	ItemsSummary   string
	Earnings       int64
	ExpiresAt      time.Time
	SecondsLeft    int
	Notes          string
	Phone          string
	IsRequest      bool
}
