package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/driver"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all drivers currently accepting assignments.
	//
	// Business Rules:
	//   - Drivers flagged available and without an active delivery: Available
	//   - Drivers carrying an Assigned, PickedUp, or InTransit delivery: Unavailable
	//   - Drivers who went offline: Unavailable
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
