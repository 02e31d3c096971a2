package queries

import (
	"context"
	"log/slog"

	"console/internal/core/domain/model/order"
	"console/internal/core/ports"
)

// GetOrderQueryHandler fetches the canonical aggregate from the order service
// and replaces the cached snapshot with it wholesale. Running it twice in a
// row leaves the same state as running it once.
type GetOrderQueryHandler struct {
	gateway   ports.OrderGateway
	snapshots ports.SnapshotStore
	logger    *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single-order refreshes.
func NewGetOrderQueryHandler(
	gateway ports.OrderGateway,
	snapshots ports.SnapshotStore,
	logger *slog.Logger,
) GetOrderQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetOrderQueryHandler{gateway: gateway, snapshots: snapshots, logger: logger}
}

// Handle executes the refresh. The server response is stored as the new
// snapshot; caching failures degrade to a warning and never fail the read.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.gateway.GetOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err := h.snapshots.Replace(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to cache order snapshot",
			"order_id", query.OrderID().String(), "error", err)
	}

	return aggregate, nil
}
