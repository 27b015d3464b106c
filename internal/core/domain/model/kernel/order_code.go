package kernel

import (
	"crypto/rand"
	"fmt"
	"regexp"

	"campuseats/internal/pkg/errs"
)

// orderCodePattern matches the canonical order code form, e.g. "SHF-4A9F02".
var orderCodePattern = regexp.MustCompile(`^SHF-[0-9A-F]{6}$`)

// ErrOrderCodeIsNotConstructed indicates a zero-value OrderCode.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderCode must be created via NewOrderCode or OrderCodeFromString")

// OrderCode is the short human-readable code printed on receipts and read out
// at pickup counters. Unlike the order UUID it is meant for people: six
// uppercase hex characters behind a fixed "SHF-" prefix.
type OrderCode struct {
	value string
}

// NewOrderCode generates a fresh random order code.
func NewOrderCode() OrderCode {
	var b [3]byte
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(b[:])
	return OrderCode{value: fmt.Sprintf("SHF-%02X%02X%02X", b[0], b[1], b[2])}
}

// OrderCodeFromString reconstructs an OrderCode from persistence.
// Returns a validation error if the string does not match the canonical form.
func OrderCodeFromString(s string) (OrderCode, error) {
	code := OrderCode{value: s}
	if err := code.Validate(); err != nil {
		return OrderCode{}, err
	}
	return code, nil
}

// String returns the code in its canonical "SHF-XXXXXX" form.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes for equality.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate checks the code against the canonical form.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return ErrOrderCodeIsNotConstructed
	}
	if !orderCodePattern.MatchString(c.value) {
		return errs.NewValueIsInvalidErrorWithCause("orderCode",
			fmt.Errorf("%q does not match SHF-XXXXXX", c.value))
	}
	return nil
}
