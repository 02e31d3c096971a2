package queries

import (
	"errors"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/pkg/guard"
)

var ErrGetOrderActionsQueryIsNotConstructed = errors.New(
	"GetOrderActionsQuery must be created via NewGetOrderActionsQuery constructor",
)

// defaultActionsLimit bounds the history panel when the caller gives no limit.
const defaultActionsLimit = 50

// GetOrderActionsQuery retrieves the recorded workflow actions for one order,
// newest first. It backs the action history panel of the detail view.
type GetOrderActionsQuery struct {
	orderID kernel.OrderID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetOrderActionsQuery creates a query for an order's action history.
// A non-positive limit falls back to the default.
func NewGetOrderActionsQuery(orderID kernel.OrderID, limit int) (GetOrderActionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderActionsQuery{}, err
	}

	if limit <= 0 {
		limit = defaultActionsLimit
	}

	return GetOrderActionsQuery{
		orderID: orderID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderActionsQueryIsNotConstructed)
}

// OrderID returns the target order identifier.
func (q GetOrderActionsQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Limit returns the maximum number of entries to return.
func (q GetOrderActionsQuery) Limit() int {
	return q.limit
}

// GetOrderActionsQueryResponse is one row of the action history.
type GetOrderActionsQueryResponse struct {
	Action     string
	Outcome    string
	Message    string
	OccurredAt time.Time
}
