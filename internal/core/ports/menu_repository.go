package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/menu"
)

// MenuItemRepository defines the read contract for restaurant menu items.
// Order placement snapshots names and prices from here.
type MenuItemRepository interface {
	// GetByIDs retrieves the menu items with the given identifiers.
	// Items missing from storage are simply absent from the result;
	// callers decide whether a miss is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]menu.Item, error)
}
