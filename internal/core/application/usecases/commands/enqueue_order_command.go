package commands

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var (
	ErrEnqueueOrderCommandIsNotConstructed = errors.New(
		"EnqueueOrderCommand must be created via NewEnqueueOrderCommand constructor",
	)
	ErrQueuedItemsAreRequired = errs.NewValueIsRequiredErrorWithCause(
		"items",
		errors.New("a queued order must carry an explicit item list"),
	)
)

// EnqueueOrderCommand represents deferring an order submission to the
// background queue instead of placing it inline. The submission is fully
// validated only when the drain routine replays it.
type EnqueueOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	notes           string
	items           []OrderItemInput

	guard guard.ConstructorGuard
}

// NewEnqueueOrderCommand creates a command to push an order submission onto
// the background queue. Rejects submissions that could never be placed:
// malformed identifiers, a missing address, or an empty item list.
func NewEnqueueOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []OrderItemInput,
) (EnqueueOrderCommand, error) {
	enqueueCommand := EnqueueOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		enqueueCommand.setCustomerID(customerID),
		enqueueCommand.setRestaurantID(restaurantID),
		enqueueCommand.setDeliveryAddress(deliveryAddress),
		enqueueCommand.setItems(items),
	); err != nil {
		return EnqueueOrderCommand{}, err
	}

	return enqueueCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueOrderCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueOrderCommandIsNotConstructed)
}

// CustomerID returns the customer the deferred order belongs to.
func (c EnqueueOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the deferred order targets.
func (c EnqueueOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the destination address.
func (c EnqueueOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns optional order-level instructions.
func (c EnqueueOrderCommand) Notes() string {
	return c.notes
}

// Items returns the requested item lines.
func (c EnqueueOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *EnqueueOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *EnqueueOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *EnqueueOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *EnqueueOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrQueuedItemsAreRequired
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
