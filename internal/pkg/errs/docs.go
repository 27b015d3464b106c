// Package errs provides standardized error types for the order coordination service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error family per failure kind the service reports:
//   - ObjectNotFoundError: a referenced order, job, delivery, or courier does not exist
//   - ConflictError: an operation lost a race for a contended resource
//     (e.g. a delivery job that was already claimed or expired)
//   - InvalidTransitionError: an operation is not legal for the current lifecycle state
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters map the sentinels onto wire-level error codes, so every
// failure a caller sees is attributable to exactly one of these kinds.
package errs
