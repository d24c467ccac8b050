package commands

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var ErrUpdateDriverAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateDriverAvailabilityCommand must be created via NewUpdateDriverAvailabilityCommand constructor",
)

// UpdateDriverAvailabilityCommand represents a driver toggling whether they
// accept new assignments.
type UpdateDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewUpdateDriverAvailabilityCommand creates a command to change driver availability.
func NewUpdateDriverAvailabilityCommand(driverID kernel.UUID, isAvailable bool) (UpdateDriverAvailabilityCommand, error) {
	availabilityCommand := UpdateDriverAvailabilityCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setDriverID(driverID); err != nil {
		return UpdateDriverAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver changing availability.
func (c UpdateDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// IsAvailable returns the requested availability flag.
func (c UpdateDriverAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateDriverAvailabilityCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
