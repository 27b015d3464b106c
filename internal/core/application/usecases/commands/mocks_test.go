package commands_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockJobBoard struct{ mock.Mock }

func (m *MockJobBoard) Add(ctx context.Context, job delivery.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobBoard) Take(ctx context.Context, id kernel.UUID, now time.Time) (delivery.Job, error) {
	args := m.Called(ctx, id, now)
	return args.Get(0).(delivery.Job), args.Error(1)
}

func (m *MockJobBoard) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobBoard) GetAllOpen(ctx context.Context, now time.Time) ([]delivery.Job, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Job), args.Error(1)
}

func (m *MockJobBoard) TakeExpired(ctx context.Context, now time.Time) ([]delivery.Job, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Job), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.ActiveDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.ActiveDelivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.ActiveDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.ActiveDelivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.ActiveDelivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.ActiveDelivery), args.Error(1)
}

func (m *MockDeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Profile), args.Error(1)
}

// MockUoW implements every repository factory, so one mock serves all the
// composite unit of work interfaces.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) JobBoard() ports.JobBoard {
	args := m.Called()
	return args.Get(0).(ports.JobBoard)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderJobUoWFactory struct{ mock.Mock }

func (m *MockOrderJobUoWFactory) Create() commands.OrderJobUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderJobUoW)
}

type MockOrderDeliveryUoWFactory struct{ mock.Mock }

func (m *MockOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDeliveryUoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

// test fixtures

func testLines(t *testing.T) []order.Line {
	t.Helper()
	burger, err := order.NewLine("item-1", "Cheese Burger", 2, 45000)
	require.NoError(t, err)
	fries, err := order.NewLine("item-2", "Fries", 1, 10000)
	require.NoError(t, err)
	return []order.Line{burger, fries}
}

func testDestination(t *testing.T) *kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation("loc-12", "Dormitory 12", 15000)
	require.NoError(t, err)
	return &loc
}

func testOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		ID:             id,
		RequesterID:    "user-42",
		RestaurantName: "Burger Land",
		Lines:          testLines(t),
		DeliveryFee:    15000,
		Destination:    testDestination(t),
		Phone:          "+989123456789",
	})
	require.NoError(t, err)
	return o
}

func testJob(t *testing.T, o *order.Order) delivery.Job {
	t.Helper()
	job, err := delivery.NewJobFromOrder(o, time.Now())
	require.NoError(t, err)
	return job
}

func testActiveDelivery(t *testing.T, o *order.Order, courierID kernel.UUID) *delivery.ActiveDelivery {
	t.Helper()
	d, err := delivery.NewActiveDelivery(testJob(t, o), courierID, "Test User", o.Phone())
	require.NoError(t, err)
	return d
}
