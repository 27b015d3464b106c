package delivery

import (
	"errors"
	"math"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

const (
	// orderEarningsShare is the fraction of the delivery fee paid to the courier
	// for a regular order job.
	orderEarningsShare = 0.80

	// orderJobTTL is how long a regular order job stays claimable.
	orderJobTTL = 60 * time.Second

	// requestEarningsShare is the fraction of the item price paid to the courier
	// for a custom delivery request.
	requestEarningsShare = 0.10

	// requestJobTTL is how long a custom delivery request stays claimable.
	requestJobTTL = 120 * time.Second

	// unknownDropOff is shown when the requester picked no delivery location.
	unknownDropOff = "Unknown Location"
)

// ErrJobIsNotConstructed indicates that a Job was not created via one of the
// Job constructors.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJobFromOrder, NewRequestJob, or RestoreJob")

// ErrOrderNeedsNoCourier is returned when deriving a job from a self-pickup order.
var ErrOrderNeedsNoCourier = errors.New("self-pickup orders have no delivery job")

// Job is an open invitation to deliver: the courier-facing projection of an
// order (or a custom delivery request) waiting for a claim.
//
// A regular job's id equals the originating order id and is never reused.
// Jobs are immutable; the board only ever inserts and removes them. A job past
// its expiry is claimable by nobody and silently evicted on the next listing.
type Job struct {
	id             kernel.UUID
	restaurantName string
	pickupPoint    string
	dropOffPoint   string
	itemsSummary   string
	earnings       int64
	expiresAt      time.Time
	notes          string
	phone          string
	isRequest      bool
	isConstructed  bool
}

// NewJobFromOrder derives the open job for a courier-needed order.
// The courier earns 80% of the delivery fee and the job expires 60 seconds
// after posting.
func NewJobFromOrder(o *order.Order, now time.Time) (Job, error) {
	if err := o.Validate(); err != nil {
		return Job{}, err
	}
	if !o.NeedsCourier() {
		return Job{}, errs.NewValueIsInvalidErrorWithCause("order", ErrOrderNeedsNoCourier)
	}

	dropOff := unknownDropOff
	if dest := o.Destination(); dest != nil {
		dropOff = dest.Name()
	}

	return Job{
		id:             o.ID(),
		restaurantName: o.RestaurantName(),
		pickupPoint:    o.RestaurantName(),
		dropOffPoint:   dropOff,
		itemsSummary:   o.ItemsSummary(),
		earnings:       int64(math.Round(float64(o.DeliveryFee()) * orderEarningsShare)),
		expiresAt:      now.Add(orderJobTTL),
		notes:          o.Notes(),
		phone:          o.Phone(),
		isConstructed:  true,
	}, nil
}

// NewRequestJob creates a job for a custom delivery request: a requester asks
// for a single named item to be fetched from a restaurant without placing a
// catalog order. The courier earns 10% of the item price and the request stays
// open for two minutes.
func NewRequestJob(
	id kernel.UUID,
	restaurantName string,
	pickupPoint string,
	dropOffPoint string,
	foodName string,
	price int64,
	now time.Time,
) (Job, error) {
	if err := id.Validate(); err != nil {
		return Job{}, err
	}
	if foodName == "" {
		return Job{}, errs.NewValueIsRequiredError("food name")
	}
	if price <= 0 {
		return Job{}, errs.NewValueIsInvalidError("price")
	}
	if pickupPoint == "" {
		return Job{}, errs.NewValueIsRequiredError("pickup point")
	}
	if dropOffPoint == "" {
		return Job{}, errs.NewValueIsRequiredError("drop-off point")
	}

	return Job{
		id:             id,
		restaurantName: restaurantName,
		pickupPoint:    pickupPoint,
		dropOffPoint:   dropOffPoint,
		itemsSummary:   foodName,
		earnings:       int64(math.Round(float64(price) * requestEarningsShare)),
		expiresAt:      now.Add(requestJobTTL),
		isRequest:      true,
		isConstructed:  true,
	}, nil
}

// RestoreJobParams carries the complete persisted state of a job.
type RestoreJobParams struct {
	ID             kernel.UUID
	RestaurantName string
	PickupPoint    string
	DropOffPoint   string
	ItemsSummary   string
	Earnings       int64
	ExpiresAt      time.Time
	Notes          string
	Phone          string
	IsRequest      bool
}

// RestoreJob reconstructs a Job from persistent storage.
func RestoreJob(p RestoreJobParams) (Job, error) {
	if err := p.ID.Validate(); err != nil {
		return Job{}, err
	}

	return Job{
		id:             p.ID,
		restaurantName: p.RestaurantName,
		pickupPoint:    p.PickupPoint,
		dropOffPoint:   p.DropOffPoint,
		itemsSummary:   p.ItemsSummary,
		earnings:       p.Earnings,
		expiresAt:      p.ExpiresAt,
		notes:          p.Notes,
		phone:          p.Phone,
		isRequest:      p.IsRequest,
		isConstructed:  true,
	}, nil
}

// ID returns the job identifier. For regular jobs it equals the order id.
func (j Job) ID() kernel.UUID {
	return j.id
}

// RestaurantName returns the display name of the restaurant.
func (j Job) RestaurantName() string {
	return j.restaurantName
}

// PickupPoint returns the pickup description shown to couriers.
func (j Job) PickupPoint() string {
	return j.pickupPoint
}

// DropOffPoint returns the drop-off description shown to couriers.
func (j Job) DropOffPoint() string {
	return j.dropOffPoint
}

// ItemsSummary returns the one-line cart summary, e.g. "2x Cheese Burger, 1x Fries".
func (j Job) ItemsSummary() string {
	return j.itemsSummary
}

// Earnings returns what the courier earns for completing the job.
func (j Job) Earnings() int64 {
	return j.earnings
}

// ExpiresAt returns the absolute expiry timestamp.
func (j Job) ExpiresAt() time.Time {
	return j.expiresAt
}

// Notes returns the requester's special instructions, if any.
func (j Job) Notes() string {
	return j.notes
}

// Phone returns the requester's contact phone, if any.
func (j Job) Phone() string {
	return j.phone
}

// IsRequest reports whether the job is a custom delivery request rather than
// a regular order job.
func (j Job) IsRequest() bool {
	return j.isRequest
}

// Expired reports whether the job's deadline has passed at the given instant.
func (j Job) Expired(now time.Time) bool {
	return !j.expiresAt.After(now)
}

// Validate ensures the Job was created via one of its constructors.
func (j Job) Validate() error {
	if !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}
