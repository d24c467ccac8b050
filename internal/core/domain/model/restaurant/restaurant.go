// Package restaurant holds the read model for restaurants. Restaurant CRUD is
// owned by an external collaborator; the ordering workflows only read
// restaurants to verify the tenant an order targets actually exists.
package restaurant

import (
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// Restaurant is the slice of a restaurant the ordering workflows depend on.
// A restaurant is the tenancy boundary: every menu item and order belongs to
// exactly one.
type Restaurant struct {
	ID       kernel.UUID
	Name     string
	IsActive bool
}
