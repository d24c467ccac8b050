package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Ownership is enforced in the WHERE clause, so a foreign order and a missing
// order are indistinguishable to the caller.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			delivery_address,
			notes,
			subtotal,
			tax,
			delivery_fee,
			total,
			created_at
		FROM orders
		WHERE id = ? AND customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes()).Row()

	var (
		id        uuid.UUID
		createdAt time.Time
	)
	err := row.Scan(
		&id,
		&response.Number,
		&response.Status,
		&response.DeliveryAddress,
		&response.Notes,
		&response.Subtotal,
		&response.Tax,
		&response.DeliveryFee,
		&response.Total,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID
	response.CreatedAt = createdAt

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) fetchItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			name,
			unit_price,
			quantity,
			notes,
			total_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)

	for rows.Next() {
		var (
			item                  GetOrderItemResponse
			menuItemID            uuid.UUID
			unitPrice, totalPrice decimal.Decimal
		)

		if err = rows.Scan(&menuItemID, &item.Name, &unitPrice, &item.Quantity, &item.Notes, &totalPrice); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.MenuItemID = id
		item.UnitPrice = unitPrice
		item.TotalPrice = totalPrice
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
