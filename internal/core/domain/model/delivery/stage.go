package delivery

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Stage is the courier-local delivery sub-status, distinct from the order's
// lifecycle status. It tracks where the courier is in the physical flow:
//
//	AwaitingPayment -> AtRestaurant -> PickedUp -> OnTheWay -> AwaitingCustomerConfirmation
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageAwaitingPayment means the courier claimed the job and waits for the
	// payment handshake to complete.
	StageAwaitingPayment

	// StageAtRestaurant means the payment is confirmed and the courier is at
	// (or heading to) the restaurant.
	StageAtRestaurant

	// StagePickedUp means the courier collected the order.
	StagePickedUp

	// StageOnTheWay means the courier is en route to the destination.
	StageOnTheWay

	// StageAwaitingCustomerConfirmation means the courier reported the hand-off
	// and waits for the requester to confirm receipt.
	StageAwaitingCustomerConfirmation
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:                      "Unknown",
		StageAwaitingPayment:              "AwaitingPayment",
		StageAtRestaurant:                 "AtRestaurant",
		StagePickedUp:                     "PickedUp",
		StageOnTheWay:                     "OnTheWay",
		StageAwaitingCustomerConfirmation: "AwaitingCustomerConfirmation",
	}
}

// Validate checks if the Stage value is valid. StageUnknown is invalid.
func (s Stage) Validate() error {
	if s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	if _, ok := getStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Safe to call on any Stage value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
