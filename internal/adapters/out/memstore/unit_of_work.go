package memstore

import (
	"context"
	"errors"

	"campuseats/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when no
// transaction is in progress.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates in-memory unit of work instances over one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for a business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
//
// Begin acquires the store-wide mutex and snapshots every record map;
// Commit releases the mutex keeping the changes; Rollback restores the
// snapshot before releasing. Holding the mutex for the whole transaction is
// what makes multi-aggregate operations, the job claim above all, atomic.
type UnitOfWork struct {
	store  *Store
	active bool
	snap   storeSnapshot
}

// Begin starts a transaction by locking the store and taking a snapshot.
// Calling Begin on an already active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.snap = uow.store.snapshot()
	uow.active = true
	return nil
}

// Commit keeps all changes made since Begin and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active = false
	uow.snap = storeSnapshot{}
	uow.store.mu.Unlock()
	return nil
}

// Rollback restores the snapshot taken at Begin and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.restore(uow.snap)
	uow.active = false
	uow.snap = storeSnapshot{}
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns an order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, inTx: true}
}

// JobBoard returns a job board bound to this transaction.
func (uow *UnitOfWork) JobBoard() ports.JobBoard {
	return &JobBoard{store: uow.store, inTx: true}
}

// DeliveryRepository returns a delivery repository bound to this transaction.
func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &DeliveryRepository{store: uow.store, inTx: true}
}

// CourierRepository returns a courier repository bound to this transaction.
func (uow *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{store: uow.store, inTx: true}
}
