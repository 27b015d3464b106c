package order

import (
	"errors"
	"strings"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCourierAlreadyBound is returned when attempting to bind a courier to an
	// order that already has one. An order is bound at most once, ever.
	ErrCourierAlreadyBound = errors.New("order already has a bound courier")
)

// Order is the aggregate root for a purchase. It owns the authoritative
// lifecycle status; the job board and active delivery tracker only hold
// derived projections of it.
//
// Invariants:
//   - Lines are never empty and never change after creation
//   - A delivery destination and a self-pickup dining hall are mutually exclusive
//   - At most one courier is ever bound; the binding is never changed
//   - Status only moves along the transition table in this package
//   - The customer-paid flag and the status are separate facts: "customer says
//     paid" does not imply "courier confirmed received"
type Order struct {
	id                 kernel.UUID
	code               kernel.OrderCode
	requesterID        string
	restaurantName     string
	lines              []Line
	deliveryFee        int64
	discount           int64
	promoCode          string
	destination        *kernel.Location
	diningHall         string
	notes              string
	phone              string
	status             Status
	courierID          *kernel.UUID
	customerPaid       bool
	cancellationReason string
	etaMinutes         int
	createdAt          time.Time
	isConstructed      bool
}

// NewOrderParams carries the inputs for NewOrder. Destination and DiningHall
// are both optional but mutually exclusive; an order without a dining hall
// needs a courier.
type NewOrderParams struct {
	ID             kernel.UUID
	RequesterID    string
	RestaurantName string
	Lines          []Line
	DeliveryFee    int64
	Destination    *kernel.Location
	DiningHall     string
	Notes          string
	Phone          string
	PromoCode      string
	Discount       int64
}

// NewOrder creates a new Order with a fresh order code and the initial
// SearchingForCourier status. The total is computed at construction as
// subtotal + delivery fee - discount and never recomputed afterwards.
//
// Fails with a validation error if the cart is empty, any line is invalid,
// the discount is negative, or both routing options are set at once.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{
		code:          kernel.NewOrderCode(),
		status:        SearchingForCourier,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setRequesterID(p.RequesterID),
		o.setLines(p.Lines),
		o.setDeliveryFee(p.DeliveryFee),
		o.setDiscount(p.Discount),
		o.setRouting(p.Destination, p.DiningHall),
	); err != nil {
		return nil, err
	}

	o.promoCode = p.PromoCode
	o.restaurantName = p.RestaurantName
	o.notes = p.Notes
	o.phone = p.Phone

	return o, nil
}

// RestoreOrderParams carries the complete persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Code               kernel.OrderCode
	RequesterID        string
	RestaurantName     string
	Lines              []Line
	DeliveryFee        int64
	Discount           int64
	PromoCode          string
	Destination        *kernel.Location
	DiningHall         string
	Notes              string
	Phone              string
	Status             Status
	CourierID          *kernel.UUID
	CustomerPaid       bool
	CancellationReason string
	ETAMinutes         int
	CreatedAt          time.Time
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any valid status and an existing courier binding,
// but it still refuses structurally invalid state.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setRequesterID(p.RequesterID),
		o.setLines(p.Lines),
		o.setDeliveryFee(p.DeliveryFee),
		o.setDiscount(p.Discount),
		o.setRouting(p.Destination, p.DiningHall),
		p.Code.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if p.CourierID != nil {
		if err := p.CourierID.Validate(); err != nil {
			return nil, err
		}
		courierID := *p.CourierID
		o.courierID = &courierID
	}

	o.code = p.Code
	o.status = p.Status
	o.promoCode = p.PromoCode
	o.restaurantName = p.RestaurantName
	o.notes = p.Notes
	o.phone = p.Phone
	o.customerPaid = p.CustomerPaid
	o.cancellationReason = p.CancellationReason
	o.etaMinutes = p.ETAMinutes
	o.createdAt = p.CreatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// RequesterID returns the opaque identifier of the requester who placed the order.
func (o *Order) RequesterID() string {
	return o.requesterID
}

// RestaurantName returns the display name of the restaurant preparing the order.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// Lines returns a copy of the cart lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// DeliveryFee returns the delivery fee charged to the requester.
func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// Discount returns the promo discount applied to the order, zero if none.
func (o *Order) Discount() int64 {
	return o.discount
}

// PromoCode returns the promo code applied to the order, empty if none.
func (o *Order) PromoCode() string {
	return o.promoCode
}

// Subtotal returns the sum of all line totals before fee and discount.
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, line := range o.lines {
		sum += line.Total()
	}
	return sum
}

// Total returns subtotal + delivery fee - discount.
func (o *Order) Total() int64 {
	return o.Subtotal() + o.deliveryFee - o.discount
}

// Destination returns the delivery destination, nil for self-pickup orders.
func (o *Order) Destination() *kernel.Location {
	return o.destination
}

// DiningHall returns the self-pickup dining hall, empty for courier orders.
func (o *Order) DiningHall() string {
	return o.diningHall
}

// NeedsCourier reports whether the order requires a courier.
// Self-pickup orders are issued as a code to present at the counter and never
// enter the courier matching flow.
func (o *Order) NeedsCourier() bool {
	return o.diningHall == ""
}

// Notes returns the special instructions from the requester.
func (o *Order) Notes() string {
	return o.notes
}

// Phone returns the requester's contact phone for the delivery.
func (o *Order) Phone() string {
	return o.phone
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the bound courier's ID, nil before a claim.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// IsCustomerPaid reports whether the requester marked the order as paid.
func (o *Order) IsCustomerPaid() bool {
	return o.customerPaid
}

// CancellationReason returns the reason recorded at cancellation, empty otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// ETAMinutes returns the estimated delivery time in minutes, zero before
// payment confirmation.
func (o *Order) ETAMinutes() int {
	return o.etaMinutes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ItemsSummary returns the courier-facing one-line cart summary,
// e.g. "2x Cheese Burger, 1x Fries".
func (o *Order) ItemsSummary() string {
	parts := make([]string, len(o.lines))
	for i, line := range o.lines {
		parts[i] = line.Summary()
	}
	return strings.Join(parts, ", ")
}

// AssignCourier binds a courier to the order and moves it from
// SearchingForCourier to AwaitingPayment. Only the claim workflow calls this.
//
// An order is bound at most once: a second binding attempt fails with
// ErrCourierAlreadyBound even if the status check would pass.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("orderId", o.id.String(),
			"already taken or expired", ErrCourierAlreadyBound)
	}

	newStatus, err := o.status.TransitionTo(AwaitingPayment)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// MarkCustomerPaid records that the requester says they have paid.
// Valid only while the order is awaiting payment. Re-confirming is a no-op
// success. The status does not change: the courier must still acknowledge.
func (o *Order) MarkCustomerPaid() error {
	if o.customerPaid {
		return nil
	}
	if o.status != AwaitingPayment {
		return errs.NewInvalidTransitionError(o.status.String(), AwaitingPayment.String())
	}
	o.customerPaid = true
	return nil
}

// ConfirmPayment records the courier's acknowledgement of the payment, moving
// the order to PaymentConfirmed and storing the estimated delivery time.
//
// Requires the customer-paid flag to already be set; the two-party handshake
// is strictly ordered.
func (o *Order) ConfirmPayment(etaMinutes int) error {
	if !o.customerPaid {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), PaymentConfirmed.String(),
			errors.New("awaiting customer payment"))
	}

	newStatus, err := o.status.TransitionTo(PaymentConfirmed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.etaMinutes = etaMinutes
	return nil
}

// StartDelivery moves the order to DeliveryInProgress. Called when the courier
// reports pickup or en-route progress; repeated progress reports are legal
// because DeliveryInProgress allows a self-transition.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.TransitionTo(DeliveryInProgress)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AwaitCustomerConfirmation moves the order to AwaitingCustomerConfirmation.
// Called when the courier reports the hand-off; the order is not Delivered
// until the requester confirms receipt.
func (o *Order) AwaitCustomerConfirmation() error {
	newStatus, err := o.status.TransitionTo(AwaitingCustomerConfirmation)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete moves the order to the terminal Delivered status.
// Only legal from AwaitingCustomerConfirmation.
func (o *Order) Complete() error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CancelByUser cancels the order on behalf of the requester.
//
// While the order is still in SearchingForCourier or AwaitingPayment the
// reason is optional; from any later status a non-empty reason is mandatory
// because the refund workflow depends on it.
func (o *Order) CancelByUser(reason string) error {
	if err := o.validateCancellationReason(reason); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(CancelledByUser)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// CancelByCourier cancels the order on behalf of the bound courier.
// A courier cancellation always requires a reason.
func (o *Order) CancelByCourier(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := o.status.TransitionTo(CancelledByCourier)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// Expire moves the order to the terminal ExpiredNoCourier status.
// Called by the expiry sweep when the order's job outlived its deadline
// without being claimed.
func (o *Order) Expire() error {
	newStatus, err := o.status.TransitionTo(ExpiredNoCourier)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// validateCancellationReason enforces the free-cancellation window:
// before courier acceptance is settled the reason may be omitted, afterwards
// it is required.
func (o *Order) validateCancellationReason(reason string) error {
	if reason != "" {
		return nil
	}
	if o.status == SearchingForCourier || o.status == AwaitingPayment {
		return nil
	}
	return errs.NewValueIsRequiredError("cancellationReason")
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(requesterID string) error {
	if requesterID == "" {
		return errs.NewValueIsRequiredError("requester id")
	}
	o.requesterID = requesterID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setDeliveryFee(fee int64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("delivery fee")
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setDiscount(discount int64) error {
	if discount < 0 {
		return errs.NewValueIsInvalidError("discount")
	}
	o.discount = discount
	return nil
}

func (o *Order) setRouting(destination *kernel.Location, diningHall string) error {
	if destination != nil && diningHall != "" {
		return errs.NewValueIsInvalidErrorWithCause("routing",
			errors.New("destination and dining hall are mutually exclusive"))
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
		dest := *destination
		o.destination = &dest
	}
	o.diningHall = diningHall
	return nil
}
