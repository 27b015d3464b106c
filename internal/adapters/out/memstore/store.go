// Package memstore provides an in-memory implementation of the persistence
// ports. It is the default backend: a single store-wide mutex serializes
// transactions, which makes it the single point of mutual exclusion the
// exactly-once job claim relies on.
//
// Aggregates are persisted as value records and reconstructed through the
// domain Restore constructors on every read, so mutations on a loaded
// aggregate never leak into the store before Commit.
package memstore

import (
	"sync"

	"github.com/google/uuid"

	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// Store holds all persisted records behind one mutex.
//
// Repositories obtained from a unit of work run under the transaction lock
// acquired by Begin; repositories obtained directly from the store (the read
// side) lock per call.
type Store struct {
	mu sync.Mutex

	orders     map[uuid.UUID]orderRecord
	jobs       map[uuid.UUID]delivery.Job
	deliveries map[uuid.UUID]deliveryRecord
	couriers   map[uuid.UUID]courierRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders:     make(map[uuid.UUID]orderRecord),
		jobs:       make(map[uuid.UUID]delivery.Job),
		deliveries: make(map[uuid.UUID]deliveryRecord),
		couriers:   make(map[uuid.UUID]courierRecord),
	}
}

// OrderRepository returns a standalone order repository that locks per call.
// Intended for the read side; command handlers go through a unit of work.
func (s *Store) OrderRepository() *OrderRepository {
	return &OrderRepository{store: s}
}

// JobBoard returns a standalone job board that locks per call.
func (s *Store) JobBoard() *JobBoard {
	return &JobBoard{store: s}
}

// DeliveryRepository returns a standalone delivery repository that locks per call.
func (s *Store) DeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{store: s}
}

// CourierRepository returns a standalone courier repository that locks per call.
func (s *Store) CourierRepository() *CourierRepository {
	return &CourierRepository{store: s}
}

// snapshot copies the record maps for transaction rollback. Records are
// values, so a shallow map copy is a complete snapshot.
func (s *Store) snapshot() storeSnapshot {
	return storeSnapshot{
		orders:     copyMap(s.orders),
		jobs:       copyMap(s.jobs),
		deliveries: copyMap(s.deliveries),
		couriers:   copyMap(s.couriers),
	}
}

// restore replaces the record maps with a previously taken snapshot.
func (s *Store) restore(snap storeSnapshot) {
	s.orders = snap.orders
	s.jobs = snap.jobs
	s.deliveries = snap.deliveries
	s.couriers = snap.couriers
}

type storeSnapshot struct {
	orders     map[uuid.UUID]orderRecord
	jobs       map[uuid.UUID]delivery.Job
	deliveries map[uuid.UUID]deliveryRecord
	couriers   map[uuid.UUID]courierRecord
}

func copyMap[V any](src map[uuid.UUID]V) map[uuid.UUID]V {
	dst := make(map[uuid.UUID]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// orderRecord is the persisted form of an order aggregate. It reuses the
// restore parameter struct so reads go through the same validation as any
// other storage backend.
type orderRecord struct {
	params order.RestoreOrderParams
}

// deliveryRecord is the persisted form of an active delivery.
type deliveryRecord struct {
	job           delivery.Job
	courierID     kernel.UUID
	customerName  string
	customerPhone string
	stage         delivery.Stage
	customerPaid  bool
}

// courierRecord is the persisted form of a courier profile.
type courierRecord struct {
	id                kernel.UUID
	fullName          string
	profilePictureURL string
	bankCardNumber    string
	phone             string
	vehicle           string
	rating            float64
}
