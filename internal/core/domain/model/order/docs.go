// Package order contains the Order aggregate root and its lifecycle state machine.
//
// An Order is the authoritative record of a purchase: its cart lines, fees and
// discount, routing (courier delivery destination or self-pickup dining hall),
// payment handshake flags, courier binding, and lifecycle status. Derived
// projections elsewhere (the job board, active deliveries) are read-only views;
// every status transition is written to the Order first.
//
// The lifecycle is encoded as a data-driven transition table over Status values.
// All mutating methods on Order delegate to that table, so an illegal operation
// always fails with an invalid-transition error and leaves the aggregate unchanged.
package order
