package ports

import (
	"context"
	"time"
)

// ActionEntry is one row of the workflow audit trail: which action ran against
// which order and how it ended. It backs the order history panel.
type ActionEntry struct {
	OrderID    int64
	Action     string
	Outcome    string
	Message    string
	OccurredAt time.Time
}

// ActionLog records workflow actions. Appending is best-effort from the
// workflow's point of view: a failed append degrades to a warning and never
// fails the action that produced it. Reads happen on the query side.
type ActionLog interface {
	Append(ctx context.Context, entry ActionEntry) error
}
