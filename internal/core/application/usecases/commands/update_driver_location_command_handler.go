package commands

import (
	"context"
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// UpdateDriverLocationCommandHandler records a driver's last-known position.
// While the driver carries an active delivery the coordinates are mirrored
// onto it so trackers read from a single place.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for position reports.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report command.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
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

	driverRepo := uow.DriverRepository()
	deliveryRepo := uow.DeliveryRepository()

	reportingDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	reportingDriver.MoveTo(cmd.Point())

	if err = driverRepo.Update(ctx, reportingDriver); err != nil {
		return err
	}

	activeDelivery, err := deliveryRepo.GetActiveByDriver(ctx, cmd.DriverID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if activeDelivery != nil {
		if err = activeDelivery.UpdateLocation(cmd.Point()); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, activeDelivery); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
