package ports

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
)

// JobBoard defines the persistence contract for open delivery jobs.
//
// A job sits on the board from the moment an order is placed until a courier
// claims it or its expiry passes. Take is the single claim primitive: it
// removes the job and hands it to exactly one caller, so two couriers racing
// for the same job cannot both succeed.
type JobBoard interface {
	// Add posts a new job on the board.
	// The job must be valid and not already exist on the board.
	Add(ctx context.Context, job delivery.Job) error

	// Take atomically removes the job with the given identifier and returns it.
	// Fails with a conflict error when the job is absent or already past its
	// expiry at now; a claimant cannot distinguish a lost race from an expired
	// or never-posted job.
	Take(ctx context.Context, id kernel.UUID, now time.Time) (delivery.Job, error)

	// Remove deletes the job with the given identifier if it is still posted.
	// Removing an absent job is not an error.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAllOpen retrieves all jobs whose expiry has not passed at now.
	GetAllOpen(ctx context.Context, now time.Time) ([]delivery.Job, error)

	// TakeExpired removes and returns all jobs whose expiry has passed at now.
	// Used by the expiry sweep to transition the backing orders.
	TakeExpired(ctx context.Context, now time.Time) ([]delivery.Job, error)
}
