package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the read contract for restaurants.
// Order placement verifies the target restaurant exists before resolving
// its menu.
type RestaurantRepository interface {
	// Get retrieves a restaurant by ID.
	// Returns ObjectNotFoundError when no restaurant matches.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
