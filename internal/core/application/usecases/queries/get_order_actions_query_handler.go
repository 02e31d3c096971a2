package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderActionsQueryHandler reads the action history straight from the
// database. The write side goes through the ActionLog port; reads bypass it
// so the history panel costs one raw query.
type GetOrderActionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderActionsQueryHandler creates a handler for action history queries.
func NewGetOrderActionsQueryHandler(db *gorm.DB) GetOrderActionsQueryHandler {
	return GetOrderActionsQueryHandler{db: db}
}

// Handle returns the most recent actions for the order, newest first.
func (h GetOrderActionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderActionsQuery,
) ([]GetOrderActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderActionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			outcome,
			message,
			occurred_at
		FROM action_log
		WHERE order_id = ?
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?
	`, query.OrderID().Int64(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderActionsQueryResponse
		if err = rows.Scan(
			&entry.Action,
			&entry.Outcome,
			&entry.Message,
			&entry.OccurredAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
