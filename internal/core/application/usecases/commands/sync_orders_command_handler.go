package commands

import (
	"context"
	"log/slog"
	"sort"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/ports"
)

// SyncOrderResult is the per-item outcome of a sync batch. Either the
// server identity of the created (or previously created) order, or the
// error that rejected this item.
type SyncOrderResult struct {
	ClientID    string
	Success     bool
	OrderID     string
	OrderNumber string
	Error       string
}

// OrderPlacer is the order creation primitive the sync path replays
// against. Satisfied by CreateOrderCommandHandler.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd CreateOrderCommand) (CreatedOrder, error)
}

// SyncOrdersCommandHandler replays a batch of offline orders strictly
// sequentially, sorted by client timestamp ascending regardless of arrival
// order. Each item is independent: a failure is recorded in its result and
// the rest of the batch continues.
//
// Deduplication is fail-open: when the dedup store cannot be reached the
// item is processed as if no prior mapping existed. A store outage can
// therefore duplicate an order, which is preferred over rejecting the
// whole batch.
type SyncOrdersCommandHandler struct {
	orderPlacer OrderPlacer
	dedupStore  ports.DedupStore
	logger      *slog.Logger
}

// NewSyncOrdersCommandHandler creates a handler for offline sync batches.
func NewSyncOrdersCommandHandler(
	orderPlacer OrderPlacer,
	dedupStore ports.DedupStore,
	logger *slog.Logger,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		orderPlacer: orderPlacer,
		dedupStore:  dedupStore,
		logger:      logger,
	}
}

// Handle processes the sync batch and returns one result per input,
// in replay order.
func (h SyncOrdersCommandHandler) Handle(ctx context.Context, cmd SyncOrdersCommand) ([]SyncOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	inputs := make([]SyncOrderInput, len(cmd.Inputs()))
	copy(inputs, cmd.Inputs())
	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].ClientCreatedAt.Before(inputs[j].ClientCreatedAt)
	})

	results := make([]SyncOrderResult, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, h.processInput(ctx, cmd, input))
	}

	return results, nil
}

func (h SyncOrdersCommandHandler) processInput(
	ctx context.Context,
	cmd SyncOrdersCommand,
	input SyncOrderInput,
) SyncOrderResult {
	existing, err := h.dedupStore.Get(ctx, cmd.CustomerID(), input.ClientID)
	if err != nil {
		h.logger.WarnContext(ctx, "dedup lookup failed, processing without dedup",
			"clientId", input.ClientID, "error", err)
	}
	if existing != nil {
		return SyncOrderResult{
			ClientID:    input.ClientID,
			Success:     true,
			OrderID:     existing.OrderID.String(),
			OrderNumber: existing.OrderNumber,
		}
	}

	if len(input.Items) == 0 {
		return SyncOrderResult{ClientID: input.ClientID, Error: ErrSyncItemsAreRequired.Error()}
	}

	createCmd, err := NewCreateOrderCommand(
		cmd.CustomerID(),
		input.RestaurantID,
		input.DeliveryAddress,
		input.Notes,
		input.Items,
	)
	if err != nil {
		return SyncOrderResult{ClientID: input.ClientID, Error: err.Error()}
	}

	created, err := h.orderPlacer.Handle(ctx, createCmd)
	if err != nil {
		return SyncOrderResult{ClientID: input.ClientID, Error: err.Error()}
	}

	record := ports.DedupRecord{OrderID: created.OrderID, OrderNumber: created.OrderNumber}
	if err = h.dedupStore.Set(ctx, cmd.CustomerID(), input.ClientID, record); err != nil {
		h.logger.WarnContext(ctx, "dedup mapping not persisted",
			"clientId", input.ClientID, "orderId", created.OrderID, "error", err)
	}

	return SyncOrderResult{
		ClientID:    input.ClientID,
		Success:     true,
		OrderID:     created.OrderID.String(),
		OrderNumber: created.OrderNumber,
	}
}
