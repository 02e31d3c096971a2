package ports

import (
	"context"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
)

// EventPublisher announces order state changes to interested consumers
// (list screens, downstream services). Publishing is best-effort: a failed
// publish degrades to a warning and never fails the workflow action.
type EventPublisher interface {
	OrderChanged(ctx context.Context, id kernel.OrderID, status order.Status) error
}
