// Package restaurantrepo provides read access to restaurants. Restaurants
// are reference data for the ordering workflows; there is no aggregate to
// track.
package restaurantrepo

import (
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	IsActive bool
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database DTO into a restaurant.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &restaurant.Restaurant{
		ID:       id,
		Name:     dto.Name,
		IsActive: dto.IsActive,
	}, nil
}
