// Package menu holds the read model for menu items. Menu and category CRUD is
// owned by an external collaborator; the ordering workflows only read menu
// items to validate references and snapshot prices at order time.
package menu

import (
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Item is the slice of a menu item the ordering workflows depend on.
// Every menu item belongs to exactly one restaurant (the tenancy boundary).
type Item struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        decimal.Decimal
	IsAvailable  bool
}

// BelongsTo reports whether the item belongs to the given restaurant.
func (i Item) BelongsTo(restaurantID kernel.UUID) bool {
	return i.RestaurantID.IsEqual(restaurantID)
}
