package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/cart"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A customer has at most one cart at a time.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate,
	// replacing its full set of line items.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart belonging to the given customer.
	// Returns ObjectNotFoundError when the customer has no cart.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
