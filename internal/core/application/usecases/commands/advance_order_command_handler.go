package commands

import (
	"context"
	"fmt"

	"console/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler runs the status advance workflow. The next
// status is derived locally from the current aggregate and sent to the
// server; orders already at DELIVERED and orders on statuses with no
// defined successor are rejected before any network call.
type AdvanceOrderCommandHandler struct {
	env Environment
}

// NewAdvanceOrderCommandHandler creates a handler for status advances.
func NewAdvanceOrderCommandHandler(env Environment) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{env: env}
}

// Handle processes the advance command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.env.Locks.Acquire(cmd.OrderID().Int64())
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := h.env.currentOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	next, err := current.NextStatus()
	if err != nil {
		return nil, err
	}

	updated, err := h.env.Gateway.AdvanceStatus(ctx, cmd.OrderID(), next, cmd.ContractNumber())
	if err != nil {
		h.env.reportFailure(ctx, cmd.OrderID(), "advance", err)
		return nil, err
	}

	h.env.applyMutation(ctx, "advance", updated,
		fmt.Sprintf("order %s moved to %s", cmd.OrderID(), updated.Status()))
	return updated, nil
}
