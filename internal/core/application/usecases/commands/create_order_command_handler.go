package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/cart"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/menu"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/order"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// ErrCartIsEmpty is returned for cart-sourced placement when the customer
// has no cart or the cart holds no items.
var ErrCartIsEmpty = errors.New("cart is empty")

// CreatedOrder is the identity of a freshly placed order, returned so
// callers can respond with and deduplicate on it. Order carries the full
// aggregate for callers that render the created order graph.
type CreatedOrder struct {
	OrderID     kernel.UUID
	OrderNumber string
	Order       *order.Order
}

// CreateOrderCommandHandler handles the business logic for order placement.
// Snapshots menu names and prices into order lines, derives the totals, and
// creates the order in PENDING status. Cart-sourced placements clear the
// cart in the same transaction.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The ordered restaurant must exist, and every requested line must reference
// a known, available menu item of that restaurant; otherwise the whole
// placement is rejected and nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreatedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return CreatedOrder{}, err
	}

	inputs := cmd.Items()

	var customerCart *cart.Cart
	if len(inputs) == 0 {
		loaded, err := uow.CartRepository().GetByCustomer(ctx, cmd.CustomerID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreatedOrder{}, ErrCartIsEmpty
		}
		if err != nil {
			return CreatedOrder{}, err
		}
		if loaded.IsEmpty() {
			return CreatedOrder{}, ErrCartIsEmpty
		}

		customerCart = loaded
		for _, line := range customerCart.Items() {
			inputs = append(inputs, OrderItemInput{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Notes:      line.Notes,
			})
		}
	}

	items, err := h.buildItems(ctx, uow, cmd.RestaurantID(), inputs)
	if err != nil {
		return CreatedOrder{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
		items,
	)
	if err != nil {
		return CreatedOrder{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreatedOrder{}, err
	}

	if customerCart != nil {
		customerCart.Clear()
		if err = uow.CartRepository().Update(ctx, customerCart); err != nil {
			return CreatedOrder{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedOrder{}, err
	}

	return CreatedOrder{OrderID: newOrder.ID(), OrderNumber: newOrder.Number(), Order: newOrder}, nil
}

// buildItems resolves the requested lines against the restaurant's menu and
// snapshots current names and prices into order items.
func (h CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	uow PlacementUoW,
	restaurantID kernel.UUID,
	inputs []OrderItemInput,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.MenuItemID)
	}

	menuItems, err := uow.MenuItemRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]menu.Item, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID.String()] = menuItem
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		menuItem, ok := byID[input.MenuItemID.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("menuItem", input.MenuItemID)
		}
		if !menuItem.BelongsTo(restaurantID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menuItemId",
				fmt.Errorf("menu item %s belongs to another restaurant", menuItem.ID),
			)
		}
		if !menuItem.IsAvailable {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menuItemId",
				fmt.Errorf("menu item %q is not available", menuItem.Name),
			)
		}

		item, err := order.NewItem(input.MenuItemID, menuItem.Name, menuItem.Price, input.Quantity, input.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
