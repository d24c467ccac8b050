package order

import (
	"errors"
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is an order line holding a snapshot of the referenced menu item.
// The unit price and line total are captured at order time and are immune to
// later menu price changes.
type Item struct {
	menuItemID    kernel.UUID
	name          string
	unitPrice     decimal.Decimal
	quantity      int
	notes         string
	totalPrice    decimal.Decimal
	isConstructed bool
}

// NewItem creates an order line for a menu item, snapshotting its unit price.
// Quantity must be at least 1 and the unit price must not be negative.
// The line total is derived as unitPrice * quantity.
func NewItem(menuItemID kernel.UUID, name string, unitPrice decimal.Decimal, quantity int, notes string) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("unit price")
	}

	return Item{
		menuItemID:    menuItemID,
		name:          name,
		unitPrice:     unitPrice,
		quantity:      quantity,
		notes:         notes,
		totalPrice:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence, trusting the stored
// line total rather than recomputing it.
func RestoreItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice decimal.Decimal,
	quantity int,
	notes string,
	totalPrice decimal.Decimal,
) (Item, error) {
	item, err := NewItem(menuItemID, name, unitPrice, quantity, notes)
	if err != nil {
		return Item{}, err
	}
	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the Item was created through a factory function.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name captured at order time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional per-line note.
func (i Item) Notes() string {
	return i.notes
}

// TotalPrice returns the line total (unit price times quantity).
func (i Item) TotalPrice() decimal.Decimal {
	return i.totalPrice
}
