package commands

import (
	"context"
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// ErrDriverHasActiveDelivery is returned when a driver tries to go
// offline while still carrying an unfinished delivery.
var ErrDriverHasActiveDelivery = errs.NewValueIsInvalidErrorWithCause(
	"isAvailable",
	errors.New("driver has an active delivery"),
)

// UpdateDriverAvailabilityCommandHandler toggles a driver's availability.
// A driver mid-delivery cannot go offline; completing the delivery frees
// them first.
type UpdateDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverAvailabilityCommandHandler creates a handler for availability changes.
func NewUpdateDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) UpdateDriverAvailabilityCommandHandler {
	return UpdateDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
func (h UpdateDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateDriverAvailabilityCommand) error {
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

	togglingDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !cmd.IsAvailable() {
		_, err = uow.DeliveryRepository().GetActiveByDriver(ctx, cmd.DriverID())
		if err == nil {
			return ErrDriverHasActiveDelivery
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	togglingDriver.SetAvailability(cmd.IsAvailable())

	if err = driverRepo.Update(ctx, togglingDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
