// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The unique index on order_id enforces at most one
// delivery per order.
package deliveryrepo

import (
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/delivery"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Location and lifecycle timestamps are nullable until the
// corresponding stage is reached.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DriverID         uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"index"`
	Latitude         *float64
	Longitude        *float64
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	EstimatedMinutes *int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		Status:           aggregate.Status().String(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
	}

	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain converts a database DTO back into a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return delivery.RestoreDelivery(
		id, orderID, driverID, status, location,
		dto.PickupTime, dto.DeliveryTime, dto.EstimatedMinutes,
	)
}
