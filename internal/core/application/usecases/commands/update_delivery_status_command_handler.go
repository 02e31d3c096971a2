package commands

import (
	"context"
	"fmt"

	"console/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler runs the delivery status sub-workflow.
// The gate is record presence, not order status: an order whose delivery was
// created earlier accepts updates regardless of where the order itself is.
type UpdateDeliveryStatusCommandHandler struct {
	env Environment
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(env Environment) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{env: env}
}

// Handle processes the delivery status update command.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*order.Order, error) {
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

	if err := current.ValidateDeliveryUpdateAllowed(); err != nil {
		return nil, err
	}

	updated, err := h.env.Gateway.UpdateDeliveryStatus(ctx, cmd.OrderID(), cmd.Status())
	if err != nil {
		h.env.reportFailure(ctx, cmd.OrderID(), "delivery_status", err)
		return nil, err
	}

	h.env.applyMutation(ctx, "delivery_status", updated,
		fmt.Sprintf("delivery for order %s moved to %s", cmd.OrderID(), cmd.Status()))
	return updated, nil
}
