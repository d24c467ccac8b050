// Package delivery provides the Delivery aggregate and its lifecycle state
// machine. A Delivery is created at most once per order, upon driver
// assignment, and couples driver availability to delivery progress.
package delivery

import (
	"errors"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery represents the physical transfer of one order by one driver.
//
// Invariants:
//   - An order has zero or one delivery
//   - A driver has at most one active (non-terminal) delivery at any time
//   - pickupTime is stamped on entry to PICKED_UP, deliveryTime on DELIVERED
type Delivery struct {
	id               kernel.UUID
	orderID          kernel.UUID
	driverID         kernel.UUID
	status           Status
	location         *kernel.GeoPoint
	pickupTime       *time.Time
	deliveryTime     *time.Time
	estimatedMinutes *int
	isConstructed    bool
}

// NewDelivery creates a delivery in ASSIGNED status for an order and driver.
// estimatedMinutes is the optional estimated time to completion.
func NewDelivery(id, orderID, driverID kernel.UUID, estimatedMinutes *int) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if estimatedMinutes != nil && *estimatedMinutes <= 0 {
		return nil, errs.NewValueIsInvalidError("estimatedMinutes")
	}

	return &Delivery{
		id:               id,
		orderID:          orderID,
		driverID:         driverID,
		status:           Assigned,
		estimatedMinutes: estimatedMinutes,
		isConstructed:    true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id, orderID, driverID kernel.UUID,
	status Status,
	location *kernel.GeoPoint,
	pickupTime, deliveryTime *time.Time,
	estimatedMinutes *int,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:               id,
		orderID:          orderID,
		driverID:         driverID,
		status:           status,
		location:         location,
		pickupTime:       pickupTime,
		deliveryTime:     deliveryTime,
		estimatedMinutes: estimatedMinutes,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the assigned driver's identifier.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Location returns the last mirrored driver position, if any.
func (d *Delivery) Location() *kernel.GeoPoint {
	return d.location
}

// PickupTime returns the time the order was picked up, if it has been.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveryTime returns the time the order was delivered, if it has been.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// EstimatedMinutes returns the optional estimated time to completion.
func (d *Delivery) EstimatedMinutes() *int {
	return d.estimatedMinutes
}

// IsActive reports whether the delivery still occupies its driver.
func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

// TransitionTo moves the delivery along its linear lifecycle, stamping
// pickupTime on entry to PICKED_UP and deliveryTime on entry to DELIVERED.
func (d *Delivery) TransitionTo(next Status, now time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	switch newStatus {
	case PickedUp:
		t := now
		d.pickupTime = &t
	case Delivered:
		t := now
		d.deliveryTime = &t
	}
	return nil
}

// UpdateLocation mirrors the driver's position onto the delivery so trackers
// read from a single row. Rejected once the delivery is terminal.
func (d *Delivery) UpdateLocation(point kernel.GeoPoint) error {
	if !d.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery",
			errors.New("cannot update location of a completed delivery"),
		)
	}

	d.location = &point
	return nil
}
