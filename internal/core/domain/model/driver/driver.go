// Package driver provides the Driver aggregate. A driver profile is bound
// one-to-one to a user account and carries an availability flag, the last
// known position, and a cumulative delivered count.
package driver

import (
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through the NewDriver or RestoreDriver factory functions.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// ErrDriverIsNotAvailable is returned when taking a delivery requires a
// driver who is currently available.
var ErrDriverIsNotAvailable = errs.NewValueIsInvalidErrorWithCause(
	"driver", errors.New("driver is not available"))

// Driver represents a delivery driver.
//
// Invariants (the active-delivery side is enforced by the delivery workflow,
// which owns both rows and writes them in one transaction):
//   - A driver taking a delivery must be available and becomes unavailable
//   - A driver completing a delivery becomes available and its delivered
//     counter increments
type Driver struct {
	id             kernel.UUID
	userID         kernel.UUID
	name           string
	isAvailable    bool
	location       *kernel.GeoPoint
	deliveredCount int
	isConstructed  bool
}

// NewDriver creates an available driver bound to a user account.
func NewDriver(id, userID kernel.UUID, name string) (*Driver, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("driver name")
	}

	return &Driver{
		id:            id,
		userID:        userID,
		name:          name,
		isAvailable:   true,
		isConstructed: true,
	}, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id, userID kernel.UUID,
	name string,
	isAvailable bool,
	location *kernel.GeoPoint,
	deliveredCount int,
) (*Driver, error) {
	d, err := NewDriver(id, userID, name)
	if err != nil {
		return nil, err
	}
	d.isAvailable = isAvailable
	d.location = location
	d.deliveredCount = deliveredCount
	return d, nil
}

// Validate ensures the Driver was created through a factory function.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the bound user account's identifier.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsAvailable reports whether the driver can take a new delivery.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// Location returns the driver's last known position, if any.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// DeliveredCount returns the number of completed deliveries.
func (d *Driver) DeliveredCount() int {
	return d.deliveredCount
}

// TakeDelivery flips the driver to unavailable for the duration of a
// delivery. Fails with ErrDriverIsNotAvailable if the driver is already busy
// or offline.
func (d *Driver) TakeDelivery() error {
	if !d.isAvailable {
		return ErrDriverIsNotAvailable
	}
	d.isAvailable = false
	return nil
}

// CompleteDelivery flips the driver back to available and increments the
// delivered counter. Called on the delivery's terminal transition.
func (d *Driver) CompleteDelivery() {
	d.isAvailable = true
	d.deliveredCount++
}

// SetAvailability sets the availability flag directly. The caller must first
// verify the driver holds no active delivery before flipping to unavailable;
// that check needs repository access and lives in the delivery workflow.
func (d *Driver) SetAvailability(isAvailable bool) {
	d.isAvailable = isAvailable
}

// MoveTo records the driver's last known position.
func (d *Driver) MoveTo(point kernel.GeoPoint) {
	d.location = &point
}
