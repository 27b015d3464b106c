package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrGetCourierProfileQueryIsNotConstructed = errors.New(
		"GetCourierProfileQuery must be created via NewGetCourierProfileQuery constructor",
	)
)

// GetCourierProfileQuery retrieves a courier's profile.
type GetCourierProfileQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierProfileQuery creates a query for a courier profile.
func NewGetCourierProfileQuery(courierID kernel.UUID) (GetCourierProfileQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierProfileQuery{}, err
	}

	return GetCourierProfileQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierProfileQueryIsNotConstructed if validation fails.
func (q GetCourierProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierProfileQueryIsNotConstructed)
}

// CourierID returns the identifier of the requested courier.
func (q GetCourierProfileQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierProfileQueryResponse is the courier profile read model.
type GetCourierProfileQueryResponse struct {
	ID                kernel.UUID
	FullName          string
	ProfilePictureURL string
	BankCardNumber    string
	Phone             string
	Vehicle           string
	Rating            float64
}
