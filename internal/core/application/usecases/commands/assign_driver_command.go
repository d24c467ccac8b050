package commands

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents assigning an available driver to an order
// that is ready for dispatch.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(orderID, driverID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	deliveryID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
//	fmt.Printf("Delivery %s created", deliveryID)
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	driverID         kernel.UUID
	estimatedMinutes *int

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
// The optional estimate must be positive when present.
func NewAssignDriverCommand(orderID, driverID kernel.UUID, estimatedMinutes *int) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setDriverID(driverID),
		assignCommand.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order being dispatched.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// EstimatedMinutes returns the optional estimated time to completion.
func (c AssignDriverCommand) EstimatedMinutes() *int {
	return c.estimatedMinutes
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setEstimatedMinutes(estimatedMinutes *int) error {
	if estimatedMinutes != nil && *estimatedMinutes <= 0 {
		return errs.NewValueIsInvalidError("estimatedTime")
	}

	c.estimatedMinutes = estimatedMinutes
	return nil
}
