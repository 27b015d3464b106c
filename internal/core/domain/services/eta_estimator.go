package services

// ETAEstimator produces the estimated delivery time stored on an order when
// the courier confirms the payment. A real implementation would consult a
// routing engine; the interface keeps that pluggable.
type ETAEstimator interface {
	// EstimateMinutes returns the estimated delivery time in minutes for the
	// given destination description.
	EstimateMinutes(destination string) int
}

// defaultETAMinutes is the placeholder estimate used without a routing engine.
const defaultETAMinutes = 25

// FixedETAEstimator returns the same estimate for every destination.
type FixedETAEstimator struct {
	minutes int
}

// NewFixedETAEstimator creates an estimator that always answers with minutes.
// A non-positive value falls back to the default placeholder.
func NewFixedETAEstimator(minutes int) FixedETAEstimator {
	if minutes <= 0 {
		minutes = defaultETAMinutes
	}
	return FixedETAEstimator{minutes: minutes}
}

// EstimateMinutes implements ETAEstimator.
func (e FixedETAEstimator) EstimateMinutes(string) int {
	return e.minutes
}
