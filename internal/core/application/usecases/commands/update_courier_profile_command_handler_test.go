package commands_test

import (
	"testing"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/courier"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testCourierProfile(t *testing.T, id kernel.UUID) *courier.Profile {
	t.Helper()
	p, err := courier.NewProfile(
		id,
		"Ali Ahmadi",
		"https://i.pravatar.cc/150?u=ali.ahmadi",
		"6037-9911-2233-4455",
		"+989123456789",
		"Motorcycle",
		4.8,
	)
	require.NoError(t, err)
	return p
}

func TestUpdateCourierProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	profile := testCourierProfile(t, courierID)
	cmd, err := commands.NewUpdateCourierProfileCommand(courierID, courier.ProfileChanges{
		Vehicle: strPtr("Bicycle"),
	})
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", mock.Anything, courierID).Return(profile, nil).Once(),
		courierRepo.On("Update", mock.Anything, profile).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCourierProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "Bicycle", profile.Vehicle())
	assert.Equal(t, "Ali Ahmadi", profile.FullName())
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCourierProfileCommandHandler_Handle_RejectedChange(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	profile := testCourierProfile(t, courierID)
	cmd, err := commands.NewUpdateCourierProfileCommand(courierID, courier.ProfileChanges{
		FullName: strPtr(""),
	})
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", mock.Anything, courierID).Return(profile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCourierProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, "Ali Ahmadi", profile.FullName(), "rejected update must not touch the profile")
	courierRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}
