package ports

import (
	"context"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
)

// SnapshotStore caches the last known canonical aggregate per order id.
// Replacement is always wholesale; no partial merges are ever performed, so
// the cached state after a mutation is indistinguishable from a fresh fetch.
type SnapshotStore interface {
	// Replace stores the aggregate as the new canonical snapshot for its id,
	// discarding whatever was cached before.
	Replace(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the cached aggregate for an order id.
	// Returns an ObjectNotFoundError when nothing is cached.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
