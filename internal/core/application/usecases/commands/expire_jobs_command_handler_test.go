package commands_test

import (
	"testing"
	"time"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireJobsCommandHandler_Handle_ExpiresOrders(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	expiredOrder := testOrder(t, orderID)
	job := testJob(t, expiredOrder)

	cmd := commands.NewExpireJobsCommand()

	orderRepo := new(MockOrderRepository)
	board := new(MockJobBoard)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobBoard").Return(board).Once(),
		board.On("TakeExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]delivery.Job{job}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(expiredOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, expiredOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireJobsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.ExpiredNoCourier, expiredOrder.Status())
	board.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireJobsCommandHandler_Handle_SkipsRequestJobs(t *testing.T) {
	ctx := t.Context()
	requestJob, err := delivery.NewRequestJob(
		kernel.NewUUID(), "Burger Land", "Burger Land", "Dormitory 12", "Fries", 10000,
		time.Now().Add(-3*time.Minute))
	require.NoError(t, err)

	cmd := commands.NewExpireJobsCommand()

	orderRepo := new(MockOrderRepository)
	board := new(MockJobBoard)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobBoard").Return(board).Once(),
		board.On("TakeExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]delivery.Job{requestJob}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireJobsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Get")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestExpireJobsCommandHandler_Handle_EmptyBoard(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewExpireJobsCommand()

	board := new(MockJobBoard)
	uow := new(MockUoW)
	orderRepo := new(MockOrderRepository)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobBoard").Return(board).Once(),
		board.On("TakeExpired", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]delivery.Job{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireJobsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestExpireJobsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderJobUoWFactory)
	h := commands.NewExpireJobsCommandHandler(factory)
	err := h.Handle(ctx, commands.ExpireJobsCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
