// Package services contains stateless domain services that do not belong to a
// single aggregate: the promo code evaluator applied at checkout and the
// estimator producing the delivery ETA stored on payment confirmation.
package services
