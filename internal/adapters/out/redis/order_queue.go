package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey      = "order:queue"
	processingKey = "order:processing"
)

// OrderQueue is a Redis-list-backed FIFO of pending order submissions.
// Enqueue pushes to the tail and Dequeue pops from the head, so submissions
// are placed in arrival order.
type OrderQueue struct {
	client *redis.Client
}

// NewOrderQueue creates a Redis-backed order queue.
func NewOrderQueue(client *redis.Client) *OrderQueue {
	return &OrderQueue{client: client}
}

// Enqueue appends a submission to the tail of the queue.
func (q *OrderQueue) Enqueue(ctx context.Context, submission ports.QueuedOrder) error {
	raw, err := json.Marshal(submission)
	if err != nil {
		return err
	}

	return q.client.RPush(ctx, queueKey, raw).Err()
}

// Dequeue removes and returns the submission at the head of the queue.
// Returns (nil, nil) when the queue is empty.
func (q *OrderQueue) Dequeue(ctx context.Context) (*ports.QueuedOrder, error) {
	raw, err := q.client.LPop(ctx, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var submission ports.QueuedOrder
	if err := json.Unmarshal([]byte(raw), &submission); err != nil {
		return nil, err
	}

	return &submission, nil
}

// MarkProcessing records the submission currently being worked on. The
// marker is a single slot; the drain loop processes one submission at a time.
func (q *OrderQueue) MarkProcessing(ctx context.Context, submission ports.QueuedOrder) error {
	raw, err := json.Marshal(submission)
	if err != nil {
		return err
	}

	return q.client.Set(ctx, processingKey, raw, 0).Err()
}

// ClearProcessing removes the in-progress marker.
func (q *OrderQueue) ClearProcessing(ctx context.Context) error {
	return q.client.Del(ctx, processingKey).Err()
}

// Len reports the number of submissions waiting in the queue.
func (q *OrderQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, queueKey).Result()
}
