package order

import (
	"errors"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Identity, items, and monetary fields are immutable once created;
//     only the status changes, through validated transitions
//   - totalAmount == subtotal + tax + deliveryFee
//   - subtotal == sum of the item line totals
//   - At least one item, all snapshotted at creation time
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id              kernel.UUID
	number          string
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	notes           string
	items           []Item
	totals          kernel.OrderTotals
	status          Status
	createdAt       time.Time
	isConstructed   bool
}

// NewOrder creates a new Order in PENDING status. The monetary totals are
// derived from the item snapshots: the subtotal is the sum of line totals,
// tax and delivery fee follow the fixed pricing rules, and the total is
// their sum. A human-readable order number is generated.
//
// Returns an error if any identifier is invalid, the delivery address is
// empty, or the item list is empty.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(item.TotalPrice())
	}

	return &Order{
		id:              id,
		number:          kernel.NewOrderNumber(),
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		items:           items,
		totals:          kernel.CalculateOrderTotals(subtotal),
		status:          Pending,
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored number,
// totals, status, and creation time. Used by repository adapters only.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []Item,
	totals kernel.OrderTotals,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		number:          number,
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		items:           items,
		totals:          totals,
		status:          status,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the tenant (restaurant) identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Notes returns the optional order note. Notes cannot be edited post-creation.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Totals returns the derived monetary fields.
func (o *Order) Totals() kernel.OrderTotals {
	return o.totals
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// TransitionTo moves the order to next if the edge exists in the lifecycle
// table. Rejects same-state no-ops, skipped states, and any transition out of
// a terminal status.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CancelByCustomer cancels the order on behalf of its owner. Permitted only
// while the order is PENDING or CONFIRMED; once the kitchen has started, a
// customer cancellation is rejected.
func (o *Order) CancelByCustomer() error {
	if !o.status.CanCancelByCustomer() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("order can only be cancelled while PENDING or CONFIRMED"),
		)
	}
	return o.TransitionTo(Cancelled)
}
