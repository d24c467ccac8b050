package commands

import (
	"context"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler advances a delivery along its lifecycle.
// Reaching DELIVERED closes everything out in the same transaction: the
// parent order moves to DELIVERED and the driver becomes available again
// with its delivered counter incremented.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	now        func() time.Time
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery progress.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DispatchUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the delivery progress command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Status(), h.now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == delivery.Delivered {
		if err = h.completeDelivery(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// completeDelivery applies the cross-aggregate effects of a finished
// delivery: terminal order status and a free driver.
func (h UpdateDeliveryStatusCommandHandler) completeDelivery(
	ctx context.Context,
	uow DispatchUoW,
	finished *delivery.Delivery,
) error {
	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	parentOrder, err := orderRepo.Get(ctx, finished.OrderID())
	if err != nil {
		return err
	}
	if err = parentOrder.TransitionTo(order.Delivered); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}

	assignedDriver, err := driverRepo.Get(ctx, finished.DriverID())
	if err != nil {
		return err
	}
	assignedDriver.CompleteDelivery()

	return driverRepo.Update(ctx, assignedDriver)
}
