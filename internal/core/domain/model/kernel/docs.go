// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID), human-readable order codes, and campus delivery
// locations with their associated fees.
//
// All kernel types are immutable value objects. Zero values are invalid and
// must be created through the provided constructor functions, which enforce
// validation at construction time.
package kernel
