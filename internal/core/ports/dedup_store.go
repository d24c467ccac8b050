package ports

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
)

// DedupRecord is the identity of an order that was already created for a
// client-generated submission id. Replays of the same submission return it
// instead of creating a second order.
type DedupRecord struct {
	OrderID     kernel.UUID
	OrderNumber string
}

// DedupStore keeps short-lived client-id to order-id mappings used by the
// offline sync endpoint. Entries expire on their own; the store is a cache,
// not a system of record.
type DedupStore interface {
	// Get looks up the record stored for the customer's client id.
	// Returns (nil, nil) when no record exists.
	Get(ctx context.Context, customerID kernel.UUID, clientID string) (*DedupRecord, error)

	// Set stores the record under the customer's client id with the
	// store's retention window.
	Set(ctx context.Context, customerID kernel.UUID, clientID string, record DedupRecord) error
}
