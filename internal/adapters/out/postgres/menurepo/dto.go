// Package menurepo provides read access to menu items. Menu items are
// reference data for the ordering workflows; there is no aggregate to track.
package menurepo

import (
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric(12,4)"`
	IsAvailable  bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// toDomain converts a database DTO into a menu item.
func toDomain(dto MenuItemDTO) (menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Item{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return menu.Item{}, err
	}

	return menu.Item{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        dto.Price,
		IsAvailable:  dto.IsAvailable,
	}, nil
}
