// Package delivery contains the courier-facing projections of the order flow:
// the open Job posted on the job board and the ActiveDelivery a courier holds
// after claiming one.
//
// Both are derived views computed from an Order at a single point in time.
// A Job is immutable and only ever inserted or removed; an ActiveDelivery
// carries the one legitimate piece of courier-local state, the delivery Stage,
// which is reconciled with the order status by the payment and delivery
// handshakes. Neither projection is ever the source of truth for order status.
package delivery
