package commands_test

import (
	"testing"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/cart"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertCartItemCommandHandler_Handle_CreatesCartOnFirstUse(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	cmd, err := commands.NewUpsertCartItemCommand(customerID, menuItemID, 2, "no onions")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).
			Once(),
		cartRepo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpsertCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := cartRepo.Calls[1]
	createdCart := addCall.Arguments[1].(*cart.Cart)
	quantity, err := createdCart.ItemQuantity(menuItemID)
	require.NoError(t, err)
	assert.Equal(t, 2, quantity)
	cartRepo.AssertExpectations(t)
}

func TestUpsertCartItemCommandHandler_Handle_UpdatesExistingLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	existingCart, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, existingCart.UpsertItem(menuItemID, 1, ""))

	cmd, err := commands.NewUpsertCartItemCommand(customerID, menuItemID, 5, "")
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(existingCart, nil).Once(),
		cartRepo.On("Update", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpsertCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	quantity, err := existingCart.ItemQuantity(menuItemID)
	require.NoError(t, err)
	assert.Equal(t, 5, quantity)
	assert.Len(t, existingCart.Items(), 1)
}

func TestClearCartCommandHandler_Handle_NoCartIsNoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewClearCartCommand(customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("cart", customerID)).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClearCartCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	cartRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
