package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/domain/model/kernel"
	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/ports"
)

// ProcessOrderQueueCommandHandler drains the background order queue to
// empty, strictly head first. Each popped submission is recorded in the
// in-flight marker before placement and the marker is cleared afterwards
// regardless of outcome, so operators can see what a dead drain run was
// holding.
//
// An explicit mutex serializes drains within this process. TryLock makes an
// overlapping run a cheap no-op instead of a queued second drain. The guard
// is process-local only: two service instances can still race on the same
// head item.
type ProcessOrderQueueCommandHandler struct {
	queue       ports.OrderQueue
	orderPlacer OrderPlacer
	logger      *slog.Logger

	mu sync.Mutex
}

// NewProcessOrderQueueCommandHandler creates a handler for queue drains.
func NewProcessOrderQueueCommandHandler(
	queue ports.OrderQueue,
	orderPlacer OrderPlacer,
	logger *slog.Logger,
) *ProcessOrderQueueCommandHandler {
	return &ProcessOrderQueueCommandHandler{
		queue:       queue,
		orderPlacer: orderPlacer,
		logger:      logger,
	}
}

// Handle drains the queue until Dequeue reports empty. A submission that
// fails placement is logged and dropped; it does not stop the drain.
func (h *ProcessOrderQueueCommandHandler) Handle(ctx context.Context, cmd ProcessOrderQueueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.mu.TryLock() {
		h.logger.DebugContext(ctx, "queue drain already in progress, skipping")
		return nil
	}
	defer h.mu.Unlock()

	for {
		submission, err := h.queue.Dequeue(ctx)
		if err != nil {
			return err
		}
		if submission == nil {
			return nil
		}

		if err = h.queue.MarkProcessing(ctx, *submission); err != nil {
			h.logger.WarnContext(ctx, "in-flight marker not set", "error", err)
		}

		if err = h.placeSubmission(ctx, *submission); err != nil {
			h.logger.ErrorContext(ctx, "queued order placement failed",
				"customerId", submission.CustomerID, "error", err)
		}

		if err = h.queue.ClearProcessing(ctx); err != nil {
			h.logger.WarnContext(ctx, "in-flight marker not cleared", "error", err)
		}
	}
}

func (h *ProcessOrderQueueCommandHandler) placeSubmission(ctx context.Context, submission ports.QueuedOrder) error {
	customerID, err := kernel.UUIDFromString(submission.CustomerID)
	if err != nil {
		return err
	}
	restaurantID, err := kernel.UUIDFromString(submission.RestaurantID)
	if err != nil {
		return err
	}
	if len(submission.Items) == 0 {
		return ErrQueuedItemsAreRequired
	}

	items := make([]OrderItemInput, 0, len(submission.Items))
	for _, item := range submission.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return err
		}
		items = append(items, OrderItemInput{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	createCmd, err := NewCreateOrderCommand(
		customerID,
		restaurantID,
		submission.DeliveryAddress,
		submission.Notes,
		items,
	)
	if err != nil {
		return err
	}

	created, err := h.orderPlacer.Handle(ctx, createCmd)
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "queued order placed",
		"orderId", created.OrderID, "orderNumber", created.OrderNumber)
	return nil
}
