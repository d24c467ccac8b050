package commands

import (
	"context"
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/cart"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// UpsertCartItemCommandHandler handles cart line changes.
// Creates the customer's cart on first use.
type UpsertCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpsertCartItemCommandHandler creates a handler for cart line changes.
func NewUpsertCartItemCommandHandler(uowFactory CartUoWFactory) UpsertCartItemCommandHandler {
	return UpsertCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart line command.
func (h UpsertCartItemCommandHandler) Handle(ctx context.Context, cmd UpsertCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	if err != nil && !isNew {
		return err
	}

	if isNew {
		customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID())
		if err != nil {
			return err
		}
	}

	if err = customerCart.UpsertItem(cmd.MenuItemID(), cmd.Quantity(), cmd.Notes()); err != nil {
		return err
	}

	if isNew {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
