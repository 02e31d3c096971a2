package commands

import (
	"context"
	"fmt"

	"console/internal/core/domain/model/order"
)

// CreateDeliveryCommandHandler runs the delivery creation sub-workflow.
// Creation is gated on the order being PAID; the delivery record on the
// returned aggregate is whatever the server assigned.
type CreateDeliveryCommandHandler struct {
	env Environment
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(env Environment) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{env: env}
}

// Handle processes the delivery creation command.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*order.Order, error) {
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

	if err := current.ValidateDeliveryCreationAllowed(); err != nil {
		return nil, err
	}

	updated, err := h.env.Gateway.CreateDelivery(ctx, cmd.OrderID(), cmd.Request())
	if err != nil {
		h.env.reportFailure(ctx, cmd.OrderID(), "delivery_create", err)
		return nil, err
	}

	h.env.applyMutation(ctx, "delivery_create", updated,
		fmt.Sprintf("delivery created for order %s", cmd.OrderID()))
	return updated, nil
}
