package delivery

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
)

// ErrActiveDeliveryIsNotConstructed indicates that an ActiveDelivery was not
// created via NewActiveDelivery or RestoreActiveDelivery.
var ErrActiveDeliveryIsNotConstructed = errors.New(
	"ActiveDelivery must be created via NewActiveDelivery or RestoreActiveDelivery")

// ActiveDelivery is the courier's view of a claimed job. It is created exactly
// once, at claim time, and removed when the requester confirms final receipt
// (or the order is cancelled).
//
// It carries everything the claimed Job carried, plus the requester's display
// name and phone, the courier-local Stage, and the customer-paid flag mirrored
// from the order.
type ActiveDelivery struct {
	job           Job
	courierID     kernel.UUID
	customerName  string
	customerPhone string
	stage         Stage
	customerPaid  bool
	isConstructed bool
}

// NewActiveDelivery creates the delivery record for a freshly claimed job.
// The stage starts at AwaitingPayment with the customer-paid flag unset.
func NewActiveDelivery(job Job, courierID kernel.UUID, customerName string, customerPhone string) (*ActiveDelivery, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	return &ActiveDelivery{
		job:           job,
		courierID:     courierID,
		customerName:  customerName,
		customerPhone: customerPhone,
		stage:         StageAwaitingPayment,
		isConstructed: true,
	}, nil
}

// RestoreActiveDelivery reconstructs an ActiveDelivery from persistent storage.
func RestoreActiveDelivery(
	job Job,
	courierID kernel.UUID,
	customerName string,
	customerPhone string,
	stage Stage,
	customerPaid bool,
) (*ActiveDelivery, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	if err := stage.Validate(); err != nil {
		return nil, err
	}

	return &ActiveDelivery{
		job:           job,
		courierID:     courierID,
		customerName:  customerName,
		customerPhone: customerPhone,
		stage:         stage,
		customerPaid:  customerPaid,
		isConstructed: true,
	}, nil
}

// ID returns the delivery identifier, equal to the claimed job's id
// (and therefore to the order id for regular jobs).
func (d *ActiveDelivery) ID() kernel.UUID {
	return d.job.ID()
}

// Job returns the claimed job snapshot.
func (d *ActiveDelivery) Job() Job {
	return d.job
}

// CourierID returns the courier holding the delivery.
func (d *ActiveDelivery) CourierID() kernel.UUID {
	return d.courierID
}

// CustomerName returns the requester's display name.
func (d *ActiveDelivery) CustomerName() string {
	return d.customerName
}

// CustomerPhone returns the requester's contact phone.
func (d *ActiveDelivery) CustomerPhone() string {
	return d.customerPhone
}

// Stage returns the courier-local delivery sub-status.
func (d *ActiveDelivery) Stage() Stage {
	return d.stage
}

// IsCustomerPaid reports the customer-paid flag mirrored from the order.
func (d *ActiveDelivery) IsCustomerPaid() bool {
	return d.customerPaid
}

// MarkCustomerPaid mirrors the order's customer-paid flag for the courier's view.
func (d *ActiveDelivery) MarkCustomerPaid() {
	d.customerPaid = true
}

// ConfirmPayment moves the delivery to the AtRestaurant stage after the
// courier acknowledged the payment.
func (d *ActiveDelivery) ConfirmPayment() {
	d.stage = StageAtRestaurant
}

// MarkPickedUp records that the courier collected the order.
func (d *ActiveDelivery) MarkPickedUp() {
	d.stage = StagePickedUp
}

// MarkOnTheWay records that the courier is en route to the destination.
func (d *ActiveDelivery) MarkOnTheWay() {
	d.stage = StageOnTheWay
}

// MarkHandedOff records that the courier reported the hand-off. The delivery
// record deliberately survives this: the courier keeps visibility until the
// requester confirms receipt, which is when the record is removed.
func (d *ActiveDelivery) MarkHandedOff() {
	d.stage = StageAwaitingCustomerConfirmation
}

// Validate ensures the ActiveDelivery was properly constructed.
func (d *ActiveDelivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrActiveDeliveryIsNotConstructed
	}
	return nil
}
