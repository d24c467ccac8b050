// Package cart provides the customer cart aggregate. A customer has at most
// one cart, created lazily on first access, holding at most one line per menu
// item. Cart contents are cleared when they are converted into an order.
package cart

import (
	"errors"
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory functions.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Item is a cart line referencing a menu item. Prices are not stored on cart
// lines; they are snapshotted only when the cart becomes an order.
type Item struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// Cart holds a customer's pending item selection.
type Cart struct {
	id            kernel.UUID
	customerID    kernel.UUID
	items         []Item
	isConstructed bool
}

// NewCart creates an empty cart for a customer.
func NewCart(id, customerID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(id, customerID kernel.UUID, items []Item) (*Cart, error) {
	c, err := NewCart(id, customerID)
	if err != nil {
		return nil, err
	}
	c.items = items
	return c, nil
}

// Validate ensures the Cart was created through a factory function.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer's identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the cart lines.
func (c *Cart) Items() []Item {
	return c.items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// UpsertItem sets the quantity and note for a menu item, keeping at most one
// line per menu item. A quantity of zero or less removes the line instead of
// persisting a non-positive quantity.
func (c *Cart) UpsertItem(menuItemID kernel.UUID, quantity int, notes string) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return nil
	}

	for i := range c.items {
		if c.items[i].MenuItemID.IsEqual(menuItemID) {
			c.items[i].Quantity = quantity
			c.items[i].Notes = notes
			return nil
		}
	}

	c.items = append(c.items, Item{MenuItemID: menuItemID, Quantity: quantity, Notes: notes})
	return nil
}

// RemoveItem deletes the line for a menu item if present.
func (c *Cart) RemoveItem(menuItemID kernel.UUID) {
	for i := range c.items {
		if c.items[i].MenuItemID.IsEqual(menuItemID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ItemQuantity returns the quantity for a menu item, or an error if the cart
// has no line for it.
func (c *Cart) ItemQuantity(menuItemID kernel.UUID) (int, error) {
	for _, item := range c.items {
		if item.MenuItemID.IsEqual(menuItemID) {
			return item.Quantity, nil
		}
	}
	return 0, errs.NewObjectNotFoundErrorWithCause(
		"cartItem", menuItemID.String(),
		fmt.Errorf("cart %s has no line for this menu item", c.id),
	)
}

// Clear removes every line, typically after the cart is converted to an order.
func (c *Cart) Clear() {
	c.items = nil
}
