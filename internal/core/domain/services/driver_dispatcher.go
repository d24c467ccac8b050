package services

import (
	"sort"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/driver"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// DriverDispatcher is a domain service that ranks available drivers for an
// assignment. It implements the nearest-available-driver heuristic: drivers
// are ordered by great-circle distance from a pickup origin, with drivers
// whose position is unknown placed last. It is a ranking, not an optimizing
// dispatcher; the caller picks from the front of the list.
//
// Example:
//
//	dispatcher := services.NewDriverDispatcher()
//	ranked := dispatcher.RankByProximity(availableDrivers, &restaurantLocation)
//	// ranked[0] is the closest driver with a known position
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// RankByProximity returns the drivers sorted ascending by distance from
// origin. Drivers without a known position sort after all drivers with one,
// keeping their relative order. When origin is nil the input order is kept.
// The input slice is not modified.
func (DriverDispatcher) RankByProximity(drivers []*driver.Driver, origin *kernel.GeoPoint) []*driver.Driver {
	ranked := make([]*driver.Driver, len(drivers))
	copy(ranked, drivers)

	if origin == nil {
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Location(), ranked[j].Location()
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.DistanceKmTo(*origin) < b.DistanceKmTo(*origin)
		}
	})

	return ranked
}
