package commands

import (
	"errors"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/pkg/guard"
)

var (
	ErrSubmitPaymentCommandIsNotConstructed = errors.New(
		"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
	)

	// ErrPaymentPlanRequired is the distinct validation error for an
	// installment payment submitted without choosing a plan. It is kept
	// separate from generic validation failures so the form can point the
	// user at the plan selector.
	ErrPaymentPlanRequired = errors.New("select a payment plan")
)

// SubmitPaymentCommand represents a validated payment action for an order:
// either a full upfront payment or the start of an installment plan.
//
// For full payments the plan id is coerced to the sentinel value 0 before
// submission, regardless of any stale plan id left in form state.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	paymentType   order.PaymentType
	paymentPlanID int64

	guard guard.ConstructorGuard
}

// NewSubmitPaymentCommand creates a payment command, performing all local
// validation before any network call can happen. An installment payment
// without a positive plan id fails with ErrPaymentPlanRequired.
func NewSubmitPaymentCommand(
	orderID kernel.OrderID,
	paymentType order.PaymentType,
	paymentPlanID int64,
) (SubmitPaymentCommand, error) {
	cmd := SubmitPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentType(paymentType),
		cmd.setPaymentPlanID(paymentType, paymentPlanID),
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c SubmitPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// PaymentType returns the chosen settlement mode.
func (c SubmitPaymentCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

// PaymentPlanID returns the plan id to submit: a positive plan id for
// installments, the sentinel 0 for full payments.
func (c SubmitPaymentCommand) PaymentPlanID() int64 {
	return c.paymentPlanID
}

func (c *SubmitPaymentCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitPaymentCommand) setPaymentType(paymentType order.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	c.paymentType = paymentType
	return nil
}

func (c *SubmitPaymentCommand) setPaymentPlanID(paymentType order.PaymentType, planID int64) error {
	switch paymentType {
	case order.InstallmentPayment:
		if planID <= 0 {
			return ErrPaymentPlanRequired
		}
		c.paymentPlanID = planID
	case order.FullPayment:
		c.paymentPlanID = order.FullPaymentPlanID
	}
	return nil
}
