// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A customer has at most one cart row, enforced with a
// unique index on customer_id.
package cartrepo

import (
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/cart"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Items      []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. Carts hold no prices; those are
// snapshotted when the cart is converted into an order.
type CartItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CartID     uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	Notes      string
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartID:     aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID.Bytes(),
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
	}
}

// toDomain converts a database DTO back into a cart aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, cart.Item{
			MenuItemID: menuItemID,
			Quantity:   itemDTO.Quantity,
			Notes:      itemDTO.Notes,
		})
	}

	return cart.RestoreCart(id, customerID, items)
}
