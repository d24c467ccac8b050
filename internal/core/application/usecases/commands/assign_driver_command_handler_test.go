package commands_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/driver"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Sam Porter")
	require.NoError(t, err)
	return d
}

func TestAssignDriverCommandHandler_Handle_ConfirmedOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Confirmed)
	testDriver := availableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), testDriver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, created.Status())
	assert.True(t, created.OrderID().IsEqual(testOrder.ID()))
	assert.True(t, created.DriverID().IsEqual(testDriver.ID()))

	// A CONFIRMED order keeps its status; only PREPARING advances.
	assert.Equal(t, order.Confirmed, testOrder.Status())
	assert.False(t, testDriver.IsAvailable())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_PreparingOrderAdvances(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Preparing)
	testDriver := availableDriver(t)
	estimate := 25

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), testDriver.ID(), &estimate)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OnTheWay, testOrder.Status())
	require.NotNil(t, created.EstimatedMinutes())
	assert.Equal(t, 25, *created.EstimatedMinutes())
}

func TestAssignDriverCommandHandler_Handle_WrongOrderStage(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Pending)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderIsNotDispatchable)
}

func TestAssignDriverCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Confirmed)
	otherDriver := availableDriver(t)
	existing, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), otherDriver.ID(), nil)
	require.NoError(t, err)

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderAlreadyHasDelivery)
	require.ErrorIs(t, err, errs.ErrConflict)
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_BusyDriver(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Confirmed)
	busyDriver := availableDriver(t)
	require.NoError(t, busyDriver.TakeDelivery())

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), busyDriver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		driverRepo.On("Get", ctx, busyDriver.ID()).Return(busyDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	deliveryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	testOrder := orderInStatus(t, kernel.NewUUID(), order.Confirmed)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), driverID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		deliveryRepo.On("GetByOrder", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", testOrder.ID())).
			Once(),
		driverRepo.On("Get", ctx, driverID).Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
