package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct coordination workflow between requester and courier.
//
// Happy path:
//
//	SearchingForCourier -> AwaitingPayment -> PaymentConfirmed
//	  -> DeliveryInProgress -> AwaitingCustomerConfirmation -> Delivered
//
// Side branches to the terminal states CancelledByUser, CancelledByCourier,
// and ExpiredNoCourier are reachable from every non-terminal state.
// DeliveryInProgress allows a self-transition because the courier reports
// several sub-stages (picked up, on the way) that all map onto it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// SearchingForCourier is the initial status of every courier-needed order.
	// A matching job is open on the job board while the order is here.
	SearchingForCourier

	// AwaitingPayment indicates a courier claimed the job and is waiting for
	// the requester to pay and for both parties to confirm it.
	AwaitingPayment

	// PaymentConfirmed indicates the courier acknowledged the payment and is
	// heading to the restaurant.
	PaymentConfirmed

	// DeliveryInProgress indicates the courier picked the order up and is en route.
	DeliveryInProgress

	// AwaitingCustomerConfirmation indicates the courier reported the hand-off
	// and the requester has not yet confirmed receipt.
	AwaitingCustomerConfirmation

	// Delivered is the terminal happy-path status.
	Delivered

	// CancelledByUser is a terminal status set by an explicit requester cancellation.
	CancelledByUser

	// CancelledByCourier is a terminal status set by an explicit courier cancellation.
	CancelledByCourier

	// ExpiredNoCourier is a terminal status set when no courier claimed the
	// order's job before its expiry.
	ExpiredNoCourier
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                      "Unknown",
		SearchingForCourier:          "SearchingForCourier",
		AwaitingPayment:              "AwaitingPayment",
		PaymentConfirmed:             "PaymentConfirmed",
		DeliveryInProgress:           "DeliveryInProgress",
		AwaitingCustomerConfirmation: "AwaitingCustomerConfirmation",
		Delivered:                    "Delivered",
		CancelledByUser:              "CancelledByUser",
		CancelledByCourier:           "CancelledByCourier",
		ExpiredNoCourier:             "ExpiredNoCourier",
	}
}

// getTransitions returns the authoritative transition table.
// A transition is legal iff the target status appears in the slice keyed by
// the source status. Terminal states have no outgoing transitions.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		SearchingForCourier: {
			AwaitingPayment,
			CancelledByUser, CancelledByCourier, ExpiredNoCourier,
		},
		AwaitingPayment: {
			PaymentConfirmed,
			CancelledByUser, CancelledByCourier, ExpiredNoCourier,
		},
		PaymentConfirmed: {
			DeliveryInProgress, AwaitingCustomerConfirmation,
			CancelledByUser, CancelledByCourier, ExpiredNoCourier,
		},
		DeliveryInProgress: {
			DeliveryInProgress, AwaitingCustomerConfirmation,
			CancelledByUser, CancelledByCourier, ExpiredNoCourier,
		},
		AwaitingCustomerConfirmation: {
			Delivered,
			CancelledByUser, CancelledByCourier, ExpiredNoCourier,
		},
		Delivered:          {},
		CancelledByUser:    {},
		CancelledByCourier: {},
		ExpiredNoCourier:   {},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition s -> next is in the table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, target := range getTransitions()[s] {
		if target == next {
			return true
		}
	}
	return false
}

// TransitionTo applies the transition s -> next.
//
// Returns the new status on a legal transition, or an InvalidTransitionError
// (leaving the caller's state untouched) when the table does not allow it.
// The function is total: every (status, status) pair yields either a new
// status or an explicit rejection.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
