package courier

import (
	"errors"
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// Domain errors for courier profile operations.
var (
	// ErrFullNameIsRequired is returned when creating a profile without a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrProfileIsNotConstructed is returned when using an improperly initialized Profile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")
)

// Profile is the courier's public profile: contact identity, the bank card
// requesters transfer the manual payment to, the vehicle, and the rating.
//
// The profile is mutable by its courier through Update; requesters only read
// it, and only for the courier currently bound to their order.
type Profile struct {
	id                kernel.UUID
	fullName          string
	profilePictureURL string
	bankCardNumber    string
	phone             string
	vehicle           string
	rating            float64
	guard             guard.ConstructorGuard
}

// NewProfile creates a validated courier profile.
// The id must be valid, the full name non-empty, and the rating within [0, 5].
func NewProfile(
	id kernel.UUID,
	fullName string,
	profilePictureURL string,
	bankCardNumber string,
	phone string,
	vehicle string,
	rating float64,
) (*Profile, error) {
	p := &Profile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setFullName(fullName),
		p.setRating(rating),
	); err != nil {
		return nil, err
	}

	p.profilePictureURL = profilePictureURL
	p.bankCardNumber = bankCardNumber
	p.phone = phone
	p.vehicle = vehicle

	return p, nil
}

// Validate ensures the Profile was created via NewProfile.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// FullName returns the courier's display name.
func (p *Profile) FullName() string {
	return p.fullName
}

// ProfilePictureURL returns the avatar URL, empty if unset.
func (p *Profile) ProfilePictureURL() string {
	return p.profilePictureURL
}

// BankCardNumber returns the payout card requesters pay to.
func (p *Profile) BankCardNumber() string {
	return p.bankCardNumber
}

// Phone returns the courier's contact phone.
func (p *Profile) Phone() string {
	return p.phone
}

// Vehicle returns the courier's vehicle description.
func (p *Profile) Vehicle() string {
	return p.vehicle
}

// Rating returns the courier's rating in [0, 5].
func (p *Profile) Rating() float64 {
	return p.rating
}

// ProfileChanges carries a partial profile update. Nil fields are left unchanged.
type ProfileChanges struct {
	FullName          *string
	ProfilePictureURL *string
	BankCardNumber    *string
	Phone             *string
	Vehicle           *string
}

// Update applies a partial update to the profile. Fields left nil in changes
// keep their current value; provided fields are validated before any of them
// is applied, so a failed update leaves the profile untouched.
func (p *Profile) Update(changes ProfileChanges) error {
	if changes.FullName != nil && *changes.FullName == "" {
		return ErrFullNameIsRequired
	}

	if changes.FullName != nil {
		p.fullName = *changes.FullName
	}
	if changes.ProfilePictureURL != nil {
		p.profilePictureURL = *changes.ProfilePictureURL
	}
	if changes.BankCardNumber != nil {
		p.bankCardNumber = *changes.BankCardNumber
	}
	if changes.Phone != nil {
		p.phone = *changes.Phone
	}
	if changes.Vehicle != nil {
		p.vehicle = *changes.Vehicle
	}
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	p.fullName = fullName
	return nil
}

func (p *Profile) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating, minRating, maxRating,
			fmt.Errorf("rating %v is outside [%v, %v]", rating, minRating, maxRating))
	}
	p.rating = rating
	return nil
}
