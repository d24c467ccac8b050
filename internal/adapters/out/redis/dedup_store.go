// Package redis implements the offline-sync deduplication store and the
// background order queue on Redis. Both are soft state: dedup records expire
// and queue payloads are self-contained JSON, so a flushed Redis degrades
// behavior without corrupting orders.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// dedupTTL bounds how long a client submission ID is remembered. A client
// replaying a batch older than this may create a duplicate order; the window
// matches how long offline clients are expected to retain unsynced state.
const dedupTTL = 24 * time.Hour

// dedupRecord is the stored JSON shape for a processed client submission.
type dedupRecord struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// DedupStore remembers which client submission IDs have already produced
// orders, keyed per customer so IDs from different customers never collide.
type DedupStore struct {
	client *redis.Client
}

// NewDedupStore creates a Redis-backed deduplication store.
func NewDedupStore(client *redis.Client) *DedupStore {
	return &DedupStore{client: client}
}

// Get returns the record stored for a customer's client submission ID, or
// nil when the ID has not been seen within the retention window.
func (s *DedupStore) Get(ctx context.Context, customerID kernel.UUID, clientID string) (*ports.DedupRecord, error) {
	raw, err := s.client.Get(ctx, dedupKey(customerID, clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stored dedupRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(stored.OrderID)
	if err != nil {
		return nil, err
	}

	return &ports.DedupRecord{
		OrderID:     orderID,
		OrderNumber: stored.OrderNumber,
	}, nil
}

// Set records that a client submission ID produced the given order.
func (s *DedupStore) Set(ctx context.Context, customerID kernel.UUID, clientID string, record ports.DedupRecord) error {
	raw, err := json.Marshal(dedupRecord{
		OrderID:     record.OrderID.String(),
		OrderNumber: record.OrderNumber,
	})
	if err != nil {
		return err
	}

	return s.client.Set(ctx, dedupKey(customerID, clientID), raw, dedupTTL).Err()
}

func dedupKey(customerID kernel.UUID, clientID string) string {
	return fmt.Sprintf("order:client:%s:%s", customerID.String(), clientID)
}
