package commands_test

import (
	"testing"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/delivery"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRequestDeliveryCommand_Validation(t *testing.T) {
	valid := commands.RequestDeliveryParams{
		RequestID:      kernel.NewUUID(),
		RestaurantName: "Burger Land",
		PickupPoint:    "Burger Land",
		DropOffPoint:   "Dormitory 12",
		FoodName:       "Double Cheese Burger",
		Price:          85000,
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		_, err := commands.NewRequestDeliveryCommand(valid)
		require.NoError(t, err)
	})

	t.Run("requires food name", func(t *testing.T) {
		p := valid
		p.FoodName = ""
		_, err := commands.NewRequestDeliveryCommand(p)
		require.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		p := valid
		p.Price = 0
		_, err := commands.NewRequestDeliveryCommand(p)
		require.Error(t, err)
	})

	t.Run("requires both endpoints", func(t *testing.T) {
		p := valid
		p.DropOffPoint = ""
		_, err := commands.NewRequestDeliveryCommand(p)
		require.Error(t, err)
	})
}

func TestRequestDeliveryCommandHandler_Handle_PostsRequestJob(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestDeliveryCommand(commands.RequestDeliveryParams{
		RequestID:      requestID,
		RestaurantName: "Burger Land",
		PickupPoint:    "Burger Land",
		DropOffPoint:   "Dormitory 12",
		FoodName:       "Double Cheese Burger",
		Price:          85000,
	})
	require.NoError(t, err)

	board := new(MockJobBoard)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobBoard").Return(board).Once(),
		board.On("Add", mock.Anything, mock.MatchedBy(func(job delivery.Job) bool {
			// request jobs pay 10% of the item price
			return job.IsRequest() && job.Earnings() == 8500 && job.ID().IsEqual(requestID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	board.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockJobUoWFactory)
	h := commands.NewRequestDeliveryCommandHandler(factory)
	err := h.Handle(ctx, commands.RequestDeliveryCommand{})
	require.Error(t, err)
	assert.Equal(t, commands.ErrRequestDeliveryCommandIsNotConstructed, err)
	factory.AssertNotCalled(t, "Create")
}
