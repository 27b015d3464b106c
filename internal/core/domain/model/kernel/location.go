package kernel

import (
	"errors"
	"fmt"

	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

// ErrLocationIsNotConstructed indicates that a Location was not created via NewLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a named campus delivery destination with its delivery fee.
// The catalog of locations is owned by an external collaborator; the domain
// only carries the selected destination and the fee it implies.
//
// Location is an immutable value object.
type Location struct {
	id    string
	name  string
	fee   int64
	guard guard.ConstructorGuard
}

// NewLocation creates a validated delivery location.
// The id and name must be non-empty and the fee non-negative.
func NewLocation(id string, name string, fee int64) (Location, error) {
	if id == "" {
		return Location{}, errs.NewValueIsRequiredError("location id")
	}
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location name")
	}
	if fee < 0 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("location fee",
			fmt.Errorf("%d is negative", fee))
	}

	return Location{
		id:    id,
		name:  name,
		fee:   fee,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the catalog identifier of the location.
func (l Location) ID() string {
	return l.id
}

// Name returns the display name of the location.
func (l Location) Name() string {
	return l.name
}

// Fee returns the delivery fee associated with the location.
func (l Location) Fee() int64 {
	return l.fee
}

// IsEqual compares two locations by catalog identifier.
func (l Location) IsEqual(other Location) bool {
	return l.id == other.id
}

// Validate ensures the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
