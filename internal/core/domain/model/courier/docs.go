// Package courier contains the courier Profile aggregate: the public identity
// a requester sees once a courier is bound to their order, and the payout
// details the courier maintains themselves.
//
// The profile sits outside the order matching flow: orders and deliveries
// reference couriers only by id, and requesters may read the profile of the
// one courier currently bound to their order.
package courier
