package services

import (
	"fmt"
	"math"

	"campuseats/internal/pkg/errs"
)

// ErrPromoCodeIsUnknown is returned when a promo code is not in the table.
var ErrPromoCodeIsUnknown = errs.NewValueIsInvalidErrorWithCause("promo code",
	fmt.Errorf("code is not recognized"))

// Discount is the result of evaluating a promo code against a subtotal.
//
// Amount is the monetary discount on the subtotal. FreeDelivery signals the
// caller to zero the delivery fee instead; a free-delivery code yields a zero
// Amount because the fee composition happens in the caller, not here.
type Discount struct {
	Amount       int64
	FreeDelivery bool
	Message      string
}

// promoRule is one entry of the fixed promo table.
type promoRule struct {
	percentOff   float64
	freeDelivery bool
	message      string
}

// getPromoRules returns the fixed table of recognized promo codes.
func getPromoRules() map[string]promoRule {
	return map[string]promoRule{
		"SHARIF30":     {percentOff: 0.30, message: "30% discount applied!"},
		"TEST20":       {percentOff: 0.20, message: "20% discount applied!"},
		"FREEDELIVERY": {freeDelivery: true, message: "Free delivery applied!"},
	}
}

// PromoEvaluator maps a promo code and a subtotal to a discount.
// It is a pure function over a fixed table and holds no state.
type PromoEvaluator struct{}

// NewPromoEvaluator creates a new PromoEvaluator instance.
func NewPromoEvaluator() PromoEvaluator {
	return PromoEvaluator{}
}

// Evaluate resolves the promo code against the subtotal.
//
// Percentage codes yield a rounded integer share of the subtotal. The
// free-delivery code yields Amount zero with FreeDelivery set. Unknown codes
// fail with ErrPromoCodeIsUnknown so the caller can render "Invalid promo code."
func (PromoEvaluator) Evaluate(code string, subtotal int64) (Discount, error) {
	if subtotal < 0 {
		return Discount{}, errs.NewValueIsInvalidError("subtotal")
	}

	rule, ok := getPromoRules()[code]
	if !ok {
		return Discount{}, ErrPromoCodeIsUnknown
	}

	return Discount{
		Amount:       int64(math.Round(float64(subtotal) * rule.percentOff)),
		FreeDelivery: rule.freeDelivery,
		Message:      rule.message,
	}, nil
}
