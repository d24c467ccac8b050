// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order aggregate,
// handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns use numeric to keep the derived-totals invariant exact;
// the status column is the wire string so raw read queries need no mapping.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	Notes           string
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,4)"`
	Tax             decimal.Decimal `gorm:"type:numeric(12,4)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,4)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,4)"`
	Status          string          `gorm:"index"`
	CreatedAt       time.Time
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line with its price snapshot.
// Lines are immutable once the order is placed.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,4)"`
	Quantity   int
	Notes      string
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,4)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
			TotalPrice: item.TotalPrice(),
		})
	}

	totals := aggregate.Totals()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		DeliveryFee:     totals.DeliveryFee,
		Total:           totals.Total,
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, trusting the stored totals and line snapshots.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.RestoreItem(
			menuItemID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity, itemDTO.Notes, itemDTO.TotalPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals := kernel.OrderTotals{
		Subtotal:    dto.Subtotal,
		Tax:         dto.Tax,
		DeliveryFee: dto.DeliveryFee,
		Total:       dto.Total,
	}

	return order.RestoreOrder(
		id, dto.Number, customerID, restaurantID,
		dto.DeliveryAddress, dto.Notes, items, totals, status, dto.CreatedAt,
	)
}
