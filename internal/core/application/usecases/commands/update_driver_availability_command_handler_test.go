package commands_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/driver"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDriverAvailabilityCommandHandler_Handle_GoAvailable(t *testing.T) {
	ctx := t.Context()

	offlineDriver, err := driver.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), "Sam Porter", false, nil, 0)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(offlineDriver.ID(), true)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockDriverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, offlineDriver.ID()).Return(offlineDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, offlineDriver.IsAvailable())
	uow.AssertExpectations(t)
}

func TestUpdateDriverAvailabilityCommandHandler_Handle_GoOffline(t *testing.T) {
	ctx := t.Context()

	testDriver := availableDriver(t)
	cmd, err := commands.NewUpdateDriverAvailabilityCommand(testDriver.ID(), false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDriverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetActiveByDriver", ctx, testDriver.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testDriver.ID())).
			Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, testDriver.IsAvailable())
	uow.AssertExpectations(t)
}

func TestUpdateDriverAvailabilityCommandHandler_Handle_ActiveDeliveryBlocksGoingOffline(t *testing.T) {
	ctx := t.Context()

	testDriver := availableDriver(t)
	activeDelivery := deliveryInStatus(t, kernel.NewUUID(), testDriver.ID(), delivery.InTransit)

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(testDriver.ID(), false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDriverUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetActiveByDriver", ctx, testDriver.ID()).Return(activeDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDriverAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverHasActiveDelivery)
	assert.True(t, testDriver.IsAvailable())
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDriverAvailabilityCommandHandler_Handle_GoOfflineSucceedsAfterDeliveryCompletes(t *testing.T) {
	ctx := t.Context()

	testDriver := availableDriver(t)
	inTransit := deliveryInStatus(t, kernel.NewUUID(), testDriver.ID(), delivery.InTransit)

	cmd, err := commands.NewUpdateDriverAvailabilityCommand(testDriver.ID(), false)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDriverUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("DriverRepository").Return(driverRepo).Twice()
	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Twice()

	deliveryRepo.On("GetActiveByDriver", ctx, testDriver.ID()).Return(inTransit, nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewUpdateDriverAvailabilityCommandHandler(factory)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDriverHasActiveDelivery)
	assert.True(t, testDriver.IsAvailable())

	// Once the delivery reaches its terminal status the driver is no
	// longer blocked from going offline.
	deliveryRepo.On("GetActiveByDriver", ctx, testDriver.ID()).
		Return(nil, errs.NewObjectNotFoundError("delivery", testDriver.ID())).
		Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, testDriver.IsAvailable())
	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
}
