package queries

import (
	"errors"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, scoped to the
// requesting customer. An order owned by someone else reads as absent.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID, customerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer.
func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrderItemResponse is one line of the order read model.
type GetOrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	Notes      string
	TotalPrice decimal.Decimal
}

// GetOrderQueryResponse is the order read model returned to callers.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Status          string
	DeliveryAddress string
	Notes           string
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
	Items           []GetOrderItemResponse
}
