package order

import (
	"errors"

	"console/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as reported by the order
// service. It implements the rule table that decides which actions the console
// may offer for an order; it never decides what the status will be after a
// server round trip, because the server response is the only source of truth
// for the resulting state.
//
// State transitions driven by the generic advance action:
//
//	PENDING ──> PENDING_DELIVERY ──> DELIVERED
//
// PAID is reached through a successful payment (server-assigned) and leaves
// through a successful delivery; INSTALLMENT is a server-driven side branch.
// Both are terminal with respect to the generic advance action here.
type Status string

const (
	// Pending is the initial status of an order created from a quote.
	Pending Status = "PENDING"

	// Paid indicates the upfront payment has been recorded by the server.
	Paid Status = "PAID"

	// PendingDelivery indicates the order awaits delivery dispatch.
	PendingDelivery Status = "PENDING_DELIVERY"

	// Delivered is the final status of a fulfilled order.
	Delivered Status = "DELIVERED"

	// Installment indicates the order is being paid off in cycles.
	Installment Status = "INSTALLMENT"
)

var (
	// ErrOrderAlreadyFinal reports the advance action on a delivered order.
	// This is a no-op for the caller, not a failure of the order itself.
	ErrOrderAlreadyFinal = errors.New("order is already delivered")

	// ErrNoNextStatus reports the advance action on a status that has no
	// generic next status (PAID, INSTALLMENT, or an unknown server value).
	ErrNoNextStatus = errors.New("no legal next status from the current status")

	// ErrPaymentNotAllowed reports a payment attempt outside PENDING.
	ErrPaymentNotAllowed = errors.New("payment is only available while the order is pending")

	// ErrDeliveryCreationNotAllowed reports a delivery creation attempt outside PAID.
	ErrDeliveryCreationNotAllowed = errors.New("a delivery can only be created for a paid order")
)

func knownStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:         {},
		Paid:            {},
		PendingDelivery: {},
		Delivered:       {},
		Installment:     {},
	}
}

// IsKnown reports whether the status is part of the rule table. Unknown server
// values are representable (the aggregate still renders) but permit no action.
func (s Status) IsKnown() bool {
	_, ok := knownStatuses()[s]
	return ok
}

// Validate checks that the status carries a value at all. Unknown values are
// deliberately accepted so an unexpected server status degrades to a neutral
// "no actions available" state instead of failing to load.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// Next returns the single legal next status for the generic advance action.
//
// Returns:
//   - (PendingDelivery, nil) from Pending
//   - (Delivered, nil) from PendingDelivery
//   - ("", ErrOrderAlreadyFinal) from Delivered
//   - ("", ErrNoNextStatus) from every other status, known or not
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return PendingDelivery, nil
	case PendingDelivery:
		return Delivered, nil
	case Delivered:
		return "", ErrOrderAlreadyFinal
	default:
		return "", ErrNoNextStatus
	}
}

// ValidatePaymentAllowed checks whether a payment action may be submitted.
// Payment is permitted only while the order is PENDING; any other status is
// refused before a network call is made.
func (s Status) ValidatePaymentAllowed() error {
	if s != Pending {
		return ErrPaymentNotAllowed
	}
	return nil
}

// ValidateDeliveryCreationAllowed checks whether a delivery may be created.
// Creation is permitted only while the order is PAID.
func (s Status) ValidateDeliveryCreationAllowed() error {
	if s != Paid {
		return ErrDeliveryCreationNotAllowed
	}
	return nil
}
