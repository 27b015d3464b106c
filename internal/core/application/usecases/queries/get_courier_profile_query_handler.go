package queries

import (
	"context"

	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"
)

// CourierReader is the read port for courier profiles.
type CourierReader interface {
	Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error)
}

// GetCourierProfileQueryHandler resolves a courier profile into its read model.
type GetCourierProfileQueryHandler struct {
	couriers CourierReader
}

// NewGetCourierProfileQueryHandler creates a handler for courier profile
// lookups.
func NewGetCourierProfileQueryHandler(couriers CourierReader) GetCourierProfileQueryHandler {
	return GetCourierProfileQueryHandler{couriers: couriers}
}

// Handle executes the lookup.
func (h GetCourierProfileQueryHandler) Handle(
	ctx context.Context,
	query GetCourierProfileQuery,
) (GetCourierProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierProfileQueryResponse{}, err
	}

	profile, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return GetCourierProfileQueryResponse{}, err
	}

	return GetCourierProfileQueryResponse{
		ID:                profile.ID(),
		FullName:          profile.FullName(),
		ProfilePictureURL: profile.ProfilePictureURL(),
		BankCardNumber:    profile.BankCardNumber(),
		Phone:             profile.Phone(),
		Vehicle:           profile.Vehicle(),
		Rating:            profile.Rating(),
	}, nil
}
