package commands

import (
	"context"
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

var (
	ErrOrderIsNotDispatchable = errs.NewValueIsInvalidErrorWithCause(
		"order status",
		errors.New("order must be CONFIRMED or PREPARING to assign a driver"),
	)
	ErrOrderAlreadyHasDelivery = errs.NewConflictErrorWithCause(
		"order",
		errors.New("already has a delivery assigned"),
	)
)

// AssignDriverCommandHandler orchestrates driver assignment.
// Creates the delivery, flips the driver to unavailable, and advances a
// PREPARING order to ON_THE_WAY, all inside one transaction. An order gets
// at most one delivery and a driver at most one active delivery.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
// Requires a DispatchUoWFactory for coordinating updates across repositories.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the created delivery.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != order.Confirmed && aggregate.Status() != order.Preparing {
		return nil, ErrOrderIsNotDispatchable
	}

	_, err = deliveryRepo.GetByOrder(ctx, cmd.OrderID())
	if err == nil {
		return nil, ErrOrderAlreadyHasDelivery
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	assignedDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if err = assignedDriver.TakeDelivery(); err != nil {
		return nil, err
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.EstimatedMinutes(),
	)
	if err != nil {
		return nil, err
	}

	if aggregate.Status() == order.Preparing {
		if err = aggregate.TransitionTo(order.OnTheWay); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
