package commands

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var ErrUpsertCartItemCommandIsNotConstructed = errors.New(
	"UpsertCartItemCommand must be created via NewUpsertCartItemCommand constructor",
)

// UpsertCartItemCommand represents adding a menu item to the customer's cart
// or changing the quantity of an existing line. A quantity of zero or less
// removes the line.
type UpsertCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	notes      string

	guard guard.ConstructorGuard
}

// NewUpsertCartItemCommand creates a command to set a cart line.
func NewUpsertCartItemCommand(
	customerID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	notes string,
) (UpsertCartItemCommand, error) {
	cartCommand := UpsertCartItemCommand{
		quantity: quantity,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setMenuItemID(menuItemID),
	); err != nil {
		return UpsertCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner.
func (c UpsertCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuItemID returns the menu item being set.
func (c UpsertCartItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested quantity, zero or less meaning removal.
func (c UpsertCartItemCommand) Quantity() int {
	return c.quantity
}

// Notes returns optional line-level instructions.
func (c UpsertCartItemCommand) Notes() string {
	return c.notes
}

func (c *UpsertCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpsertCartItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
