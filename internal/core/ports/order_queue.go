package ports

import (
	"context"
)

// QueuedOrderItem is one requested line in a queued order submission.
type QueuedOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

// QueuedOrder is a raw order submission waiting for background placement.
// Identifiers stay as strings until the drain handler validates them.
type QueuedOrder struct {
	CustomerID      string            `json:"customerId"`
	RestaurantID    string            `json:"restaurantId"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Notes           string            `json:"notes,omitempty"`
	Items           []QueuedOrderItem `json:"items"`
}

// OrderQueue is a FIFO buffer of order submissions plus a single-slot marker
// for the submission currently being placed. The marker lets operators see
// what was in flight if a drain run dies mid-item.
type OrderQueue interface {
	// Enqueue appends a submission to the tail of the queue.
	Enqueue(ctx context.Context, submission QueuedOrder) error

	// Dequeue pops the submission at the head of the queue.
	// Returns (nil, nil) when the queue is empty.
	Dequeue(ctx context.Context) (*QueuedOrder, error)

	// MarkProcessing records the submission currently being placed.
	MarkProcessing(ctx context.Context, submission QueuedOrder) error

	// ClearProcessing removes the in-flight marker.
	ClearProcessing(ctx context.Context) error

	// Len reports the number of submissions waiting in the queue.
	Len(ctx context.Context) (int64, error)
}
