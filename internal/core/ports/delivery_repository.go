package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery created for the given order.
	// Returns ObjectNotFoundError when the order has no delivery.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByDriver retrieves the driver's current in-flight delivery,
	// one in Assigned, PickedUp, or InTransit status.
	// Returns ObjectNotFoundError when the driver has no active delivery.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*delivery.Delivery, error)
}
