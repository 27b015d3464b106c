package cmd

import (
	httpapi "campuseats/internal/adapters/in/http"
	"campuseats/internal/adapters/out/memstore"
	"campuseats/internal/adapters/out/postgres"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/services"
	"campuseats/internal/core/ports"

	"gorm.io/gorm"
)

// deliveryETAMinutes is the fixed estimate quoted to requesters once the
// courier confirms the payment.
const deliveryETAMinutes = 25

// CompositionRoot wires the storage backend, the domain services, and the
// use case handlers together. One root serves one process.
type CompositionRoot struct {
	uowFactory     ports.UnitOfWorkFactory
	promoEvaluator services.PromoEvaluator
	etaEstimator   services.FixedETAEstimator
}

// NewCompositionRoot builds a root over the selected storage backend.
// A nil gormDB selects the in-memory store; callers pass a database handle
// only when Config.Storage is "postgres".
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	var uowFactory ports.UnitOfWorkFactory
	if gormDB != nil {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		uowFactory = memstore.NewUnitOfWorkFactory(memstore.NewStore())
	}

	return CompositionRoot{
		uowFactory:     uowFactory,
		promoEvaluator: services.NewPromoEvaluator(),
		etaEstimator:   services.NewFixedETAEstimator(deliveryETAMinutes),
	}
}

// PromoEvaluator exposes the promo service for surfaces that preview codes.
func (c *CompositionRoot) PromoEvaluator() services.PromoEvaluator {
	return c.promoEvaluator
}

// UnitOfWorkFactory exposes the storage backend, e.g. for seeding.
func (c *CompositionRoot) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

// CreateHandlers builds the full handler set the HTTP server dispatches to.
func (c *CompositionRoot) CreateHandlers() httpapi.Handlers {
	return httpapi.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		AcceptJob:               c.CreateAcceptJobCommandHandler(),
		CustomerConfirmPayment:  c.CreateCustomerConfirmPaymentCommandHandler(),
		CourierConfirmPayment:   c.CreateCourierConfirmPaymentCommandHandler(),
		UpdateDeliveryStatus:    c.CreateUpdateDeliveryStatusCommandHandler(),
		CustomerConfirmDelivery: c.CreateCustomerConfirmDeliveryCommandHandler(),
		RequestDelivery:         c.CreateRequestDeliveryCommandHandler(),
		UpdateCourierProfile:    c.CreateUpdateCourierProfileCommandHandler(),

		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOpenJobs:        c.CreateListOpenJobsQueryHandler(),
		GetActiveDeliveries: c.CreateGetActiveDeliveriesQueryHandler(),
		GetCourierProfile:   c.CreateGetCourierProfileQueryHandler(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderJobUoWFactory = FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.promoEvaluator)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerConfirmPaymentCommandHandler() commands.CustomerConfirmPaymentCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCourierConfirmPaymentCommandHandler() commands.CourierConfirmPaymentCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCourierConfirmPaymentCommandHandler(f, c.etaEstimator)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerConfirmDeliveryCommandHandler() commands.CustomerConfirmDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestDeliveryCommandHandler() commands.RequestDeliveryCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierProfileCommandHandler() commands.UpdateCourierProfileCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireJobsCommandHandler() commands.ExpireJobsCommandHandler {
	var f commands.OrderJobUoWFactory = FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireJobsCommandHandler(f)
}

// Queries read through a unit of work that never begins a transaction, so
// they hit the backing store directly.

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOpenJobsQueryHandler() queries.ListOpenJobsQueryHandler {
	return queries.NewListOpenJobsQueryHandler(c.uowFactory.Create().JobBoard())
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetCourierProfileQueryHandler() queries.GetCourierProfileQueryHandler {
	return queries.NewGetCourierProfileQueryHandler(c.uowFactory.Create().CourierRepository())
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderJobUoWFactory func() commands.OrderJobUoW

func (f FuncOrderJobUoWFactory) Create() commands.OrderJobUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
