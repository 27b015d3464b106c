// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"campuseats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// JobBoardFactory provides access to the job board within a transaction.
	JobBoardFactory interface {
		JobBoard() ports.JobBoard
	}

	// DeliveryRepoFactory provides access to the active delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierRepoFactory provides access to the courier profile repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderJobUoW manages transactions spanning orders and the job board.
	// Used when placing an order posts a job and when expiring jobs closes orders.
	OrderJobUoW interface {
		TxManager
		OrderRepoFactory
		JobBoardFactory
	}

	// OrderJobUoWFactory creates new order/job unit of work instances.
	OrderJobUoWFactory interface {
		Create() OrderJobUoW
	}

	// OrderDeliveryUoW manages transactions spanning orders and active deliveries.
	// Used by the payment handshake and delivery progress commands, which keep
	// the order status and the courier's delivery view in lockstep.
	OrderDeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderDeliveryUoWFactory creates new order/delivery unit of work instances.
	OrderDeliveryUoWFactory interface {
		Create() OrderDeliveryUoW
	}

	// JobUoW manages transactions for job-board-only operations.
	JobUoW interface {
		TxManager
		JobBoardFactory
	}

	// JobUoWFactory creates new job board unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// CourierUoW manages transactions for courier-profile-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW manages transactions across orders, the job board, and active
	// deliveries. Used by commands that settle a claim or tear an order down.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   board := uow.JobBoard()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		JobBoardFactory
		DeliveryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
