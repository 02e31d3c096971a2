package order

import (
	"fmt"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/pkg/errs"
)

// PaymentType identifies how the customer settles an order.
type PaymentType string

const (
	// FullPayment settles the whole amount upfront.
	FullPayment PaymentType = "FULL_PAYMENT"

	// InstallmentPayment settles the order in cycles against a payment plan.
	InstallmentPayment PaymentType = "INSTALLMENT"
)

// FullPaymentPlanID is the sentinel plan id submitted for full payments.
// The order service expects 0, not an absent field.
const FullPaymentPlanID int64 = 0

// Validate checks that the payment type is one of the two enumerated values.
func (t PaymentType) Validate() error {
	if t != FullPayment && t != InstallmentPayment {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment type",
			fmt.Errorf("%q is not a valid payment type", string(t)),
		)
	}
	return nil
}

// PaymentStatus is the settlement state of a single payment cycle.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "PAID"
	PaymentUnpaid PaymentStatus = "UNPAID"
)

// Validate checks that the payment status is one of the enumerated values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPaid && s != PaymentUnpaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%q is not a valid payment status", string(s)),
		)
	}
	return nil
}

// Payment is one settlement cycle carried on the order aggregate.
// Cycle 0 denotes the upfront/full payment; cycles above 0 are installments.
type Payment struct {
	cycle   int
	dueDate time.Time
	amount  kernel.Money
	status  PaymentStatus
	method  string
}

// RestorePayment reconstructs a payment record from the server aggregate.
func RestorePayment(
	cycle int,
	dueDate time.Time,
	amount kernel.Money,
	status PaymentStatus,
	method string,
) (Payment, error) {
	if cycle < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"payment cycle",
			fmt.Errorf("%d is negative", cycle),
		)
	}
	if err := status.Validate(); err != nil {
		return Payment{}, err
	}

	return Payment{
		cycle:   cycle,
		dueDate: dueDate,
		amount:  amount,
		status:  status,
		method:  method,
	}, nil
}

// Cycle returns the cycle number (0 = upfront).
func (p Payment) Cycle() int {
	return p.cycle
}

// DueDate returns when the cycle is due.
func (p Payment) DueDate() time.Time {
	return p.dueDate
}

// Amount returns the cycle amount.
func (p Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the settlement state of the cycle.
func (p Payment) Status() PaymentStatus {
	return p.status
}

// Method returns the payment method, if the server reported one.
func (p Payment) Method() string {
	return p.method
}

// IsUpfront reports whether this is the upfront/full payment cycle.
func (p Payment) IsUpfront() bool {
	return p.cycle == 0
}
