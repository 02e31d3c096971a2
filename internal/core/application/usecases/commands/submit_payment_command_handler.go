package commands

import (
	"context"
	"fmt"

	"console/internal/core/domain/model/order"
)

// SubmitPaymentCommandHandler runs the payment sub-workflow: gate on the
// current order status, submit the payment, replace local state with the
// server's updated aggregate. The resulting order status always comes from
// the server response; the handler never flips PENDING to PAID itself.
type SubmitPaymentCommandHandler struct {
	env Environment
}

// NewSubmitPaymentCommandHandler creates a handler for payment submissions.
func NewSubmitPaymentCommandHandler(env Environment) SubmitPaymentCommandHandler {
	return SubmitPaymentCommandHandler{env: env}
}

// Handle processes the payment command. Payment is refused before any network
// call when the order is not PENDING or when another operation for the same
// order is still in flight.
func (h SubmitPaymentCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentCommand) (*order.Order, error) {
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

	if err := current.ValidatePaymentAllowed(); err != nil {
		return nil, err
	}

	updated, err := h.env.Gateway.SubmitPayment(ctx, cmd.OrderID(), cmd.PaymentType(), cmd.PaymentPlanID())
	if err != nil {
		h.env.reportFailure(ctx, cmd.OrderID(), "payment", err)
		return nil, err
	}

	h.env.applyMutation(ctx, "payment", updated,
		fmt.Sprintf("payment recorded for order %s", cmd.OrderID()))
	return updated, nil
}
