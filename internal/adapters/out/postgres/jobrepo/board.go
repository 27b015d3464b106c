package jobrepo

import (
	"context"
	"errors"
	"time"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// jobTakenReason is surfaced to couriers who lose a claim race or tap an
// expired job. Both cases read the same from the outside.
const jobTakenReason = "already taken or expired"

// GormJobBoard implements JobBoard using GORM.
type GormJobBoard struct {
	db *gorm.DB
}

// NewGormJobBoard creates a new GORM job board.
func NewGormJobBoard(db *gorm.DB) *GormJobBoard {
	return &GormJobBoard{db: db}
}

// Add posts a job on the board.
func (b *GormJobBoard) Add(ctx context.Context, job delivery.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	dto := fromDomain(job)
	return b.db.WithContext(ctx).Create(&dto).Error
}

// Take removes the job and hands it to the caller.
//
// The DELETE carries the claim: when two claimants race, the second delete
// affects zero rows and loses with a conflict error, so a contested job goes
// to exactly one courier. An absent row reads the same as a lost race. Run
// inside the unit of work transaction so the claim commits atomically with
// the rest of the acceptance.
func (b *GormJobBoard) Take(ctx context.Context, id kernel.UUID, now time.Time) (delivery.Job, error) {
	if err := id.Validate(); err != nil {
		return delivery.Job{}, err
	}

	var dto JobDTO
	if err := b.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return delivery.Job{}, errs.NewConflictError("jobId", id.String(), jobTakenReason)
		}
		return delivery.Job{}, err
	}

	job, err := toDomain(dto)
	if err != nil {
		return delivery.Job{}, err
	}
	if job.Expired(now) {
		return delivery.Job{}, errs.NewConflictError("jobId", id.String(), jobTakenReason)
	}

	result := b.db.WithContext(ctx).Delete(&JobDTO{}, "id = ?", dto.ID)
	if result.Error != nil {
		return delivery.Job{}, result.Error
	}
	if result.RowsAffected == 0 {
		return delivery.Job{}, errs.NewConflictError("jobId", id.String(), jobTakenReason)
	}

	return job, nil
}

// Remove deletes a job if it is still posted. Removing an absent job is not
// an error.
func (b *GormJobBoard) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return b.db.WithContext(ctx).Delete(&JobDTO{}, "id = ?", id.Bytes()).Error
}

// GetAllOpen lists the jobs still claimable at now, soonest expiry first.
// Expired rows are filtered out here even before the sweep evicts them.
func (b *GormJobBoard) GetAllOpen(ctx context.Context, now time.Time) ([]delivery.Job, error) {
	var dtos []JobDTO
	if err := b.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Order("expires_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	jobs := make([]delivery.Job, 0, len(dtos))
	for _, dto := range dtos {
		job, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// TakeExpired removes and returns the jobs past their deadline at now.
func (b *GormJobBoard) TakeExpired(ctx context.Context, now time.Time) ([]delivery.Job, error) {
	var dtos []JobDTO
	if err := b.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return []delivery.Job{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	jobs := make([]delivery.Job, 0, len(dtos))
	for _, dto := range dtos {
		job, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
		ids = append(ids, dto.ID)
	}

	if err := b.db.WithContext(ctx).Delete(&JobDTO{}, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}
