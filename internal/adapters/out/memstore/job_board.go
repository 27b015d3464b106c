package memstore

import (
	"context"
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// jobTakenReason is surfaced to couriers who lose a claim race or tap an
// expired job. Both cases read the same from the outside.
const jobTakenReason = "already taken or expired"

// JobBoard implements ports.JobBoard over the in-memory store.
// Jobs are immutable values, so they are stored directly.
type JobBoard struct {
	store *Store
	inTx  bool
}

// Add posts a job on the board.
func (b *JobBoard) Add(_ context.Context, job delivery.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if !b.inTx {
		b.store.mu.Lock()
		defer b.store.mu.Unlock()
	}

	key := job.ID().Bytes()
	if _, exists := b.store.jobs[key]; exists {
		return errs.NewConflictError("jobId", job.ID().String(), "job already posted")
	}

	b.store.jobs[key] = job
	return nil
}

// Take removes the job and hands it to the caller. Under the transaction lock
// the check-and-delete is atomic, so a contested job goes to exactly one
// claimant; everyone else gets a conflict error. An absent job reads the same
// as a lost race: the claimant cannot tell whether it was taken or expired.
func (b *JobBoard) Take(_ context.Context, id kernel.UUID, now time.Time) (delivery.Job, error) {
	if err := id.Validate(); err != nil {
		return delivery.Job{}, err
	}
	if !b.inTx {
		b.store.mu.Lock()
		defer b.store.mu.Unlock()
	}

	key := id.Bytes()
	job, exists := b.store.jobs[key]
	if !exists {
		return delivery.Job{}, errs.NewConflictError("jobId", id.String(), jobTakenReason)
	}
	if job.Expired(now) {
		return delivery.Job{}, errs.NewConflictError("jobId", id.String(), jobTakenReason)
	}

	delete(b.store.jobs, key)
	return job, nil
}

// Remove deletes a job if it is still posted.
func (b *JobBoard) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !b.inTx {
		b.store.mu.Lock()
		defer b.store.mu.Unlock()
	}

	delete(b.store.jobs, id.Bytes())
	return nil
}

// GetAllOpen lists the jobs still claimable at now. Expired jobs are filtered
// out here even before the sweep evicts them.
func (b *JobBoard) GetAllOpen(_ context.Context, now time.Time) ([]delivery.Job, error) {
	if !b.inTx {
		b.store.mu.Lock()
		defer b.store.mu.Unlock()
	}

	open := make([]delivery.Job, 0, len(b.store.jobs))
	for _, job := range b.store.jobs {
		if !job.Expired(now) {
			open = append(open, job)
		}
	}
	return open, nil
}

// TakeExpired removes and returns the jobs past their deadline at now.
func (b *JobBoard) TakeExpired(_ context.Context, now time.Time) ([]delivery.Job, error) {
	if !b.inTx {
		b.store.mu.Lock()
		defer b.store.mu.Unlock()
	}

	expired := make([]delivery.Job, 0)
	for key, job := range b.store.jobs {
		if job.Expired(now) {
			expired = append(expired, job)
			delete(b.store.jobs, key)
		}
	}
	return expired, nil
}
