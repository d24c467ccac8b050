package commands

import (
	"context"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/ports"
)

// EnqueueOrderCommandHandler appends an order submission to the tail of the
// background queue. No idempotency check happens here: callers must not
// double-enqueue the same submission.
type EnqueueOrderCommandHandler struct {
	queue ports.OrderQueue
}

// NewEnqueueOrderCommandHandler creates a handler for queue submissions.
func NewEnqueueOrderCommandHandler(queue ports.OrderQueue) EnqueueOrderCommandHandler {
	return EnqueueOrderCommandHandler{
		queue: queue,
	}
}

// Handle processes the enqueue command.
func (h EnqueueOrderCommandHandler) Handle(ctx context.Context, cmd EnqueueOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]ports.QueuedOrderItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		items = append(items, ports.QueuedOrderItem{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		})
	}

	return h.queue.Enqueue(ctx, ports.QueuedOrder{
		CustomerID:      cmd.CustomerID().String(),
		RestaurantID:    cmd.RestaurantID().String(),
		DeliveryAddress: cmd.DeliveryAddress(),
		Notes:           cmd.Notes(),
		Items:           items,
	})
}
