// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves drivers currently accepting assignments.
// When an origin is supplied the result is sorted nearest first, which is the
// assignment heuristic: nearest available driver, not an optimizing dispatcher.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(51.5074, -0.1278)
//	query := NewGetAvailableDriversQuery(&origin)
//	handler := NewGetAvailableDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//	for _, d := range drivers {
//	    fmt.Printf("%s (%d deliveries)\n", d.Name, d.DeliveredCount)
//	}
type GetAvailableDriversQuery struct {
	origin *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for available drivers.
// A nil origin skips proximity ranking.
func NewGetAvailableDriversQuery(origin *kernel.GeoPoint) GetAvailableDriversQuery {
	return GetAvailableDriversQuery{
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// Origin returns the optional ranking origin.
func (q GetAvailableDriversQuery) Origin() *kernel.GeoPoint {
	return q.origin
}

// GetAvailableDriversQueryResponse represents one available driver in the
// read model. Location is nil for drivers who never reported a position;
// those sort last when ranking by proximity.
type GetAvailableDriversQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Location       *kernel.GeoPoint
	DeliveredCount int
}
