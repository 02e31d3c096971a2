package order

import (
	"errors"

	"console/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the RestoreOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")

// Order is the aggregate root for a customer purchase moving through payment
// and delivery. Aggregates are created externally by the order service; this
// console only ever reconstructs them from server responses and asks them
// which actions are currently permitted.
//
// Invariants:
//   - Identity is the externally assigned numeric order id, immutable
//   - Exactly one status value is active at a time
//   - The total is non-negative and reconciled server-side
//   - At most one delivery record exists
//   - Status only changes via an explicit allowed action; never free-set here
type Order struct {
	id       kernel.OrderID
	status   Status
	total    kernel.Money
	items    []LineItem
	payments []Payment
	delivery *Delivery

	isConstructed bool
}

// RestoreOrder reconstructs an order aggregate from the canonical server
// representation. The status may be a value outside the known rule table;
// such orders load and render but permit no workflow action.
func RestoreOrder(
	id kernel.OrderID,
	status Status,
	total kernel.Money,
	items []LineItem,
	payments []Payment,
	delivery *Delivery,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		total:         total,
		items:         append([]LineItem(nil), items...),
		payments:      append([]Payment(nil), payments...),
		delivery:      delivery,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Items returns the ordered line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Payments returns the ordered payment records.
func (o *Order) Payments() []Payment {
	return append([]Payment(nil), o.payments...)
}

// Delivery returns the delivery record, or nil if none exists yet.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// HasDelivery reports whether a delivery record exists.
func (o *Order) HasDelivery() bool {
	return o.delivery != nil
}

// NextStatus returns the single legal next status for the generic advance
// action. Delivered orders report ErrOrderAlreadyFinal; statuses outside the
// rule table report ErrNoNextStatus. Neither case issues a network call.
func (o *Order) NextStatus() (Status, error) {
	return o.status.Next()
}

// ValidatePaymentAllowed checks that a payment action may be submitted for
// this order. Only PENDING orders accept payments.
func (o *Order) ValidatePaymentAllowed() error {
	return o.status.ValidatePaymentAllowed()
}

// ValidateDeliveryCreationAllowed checks that a delivery may be created for
// this order. Only PAID orders accept delivery creation.
func (o *Order) ValidateDeliveryCreationAllowed() error {
	return o.status.ValidateDeliveryCreationAllowed()
}

// ValidateDeliveryUpdateAllowed checks that the delivery status may be
// updated. This only requires a pre-existing delivery record; it is not a
// status-based check.
func (o *Order) ValidateDeliveryUpdateAllowed() error {
	if o.delivery == nil {
		return ErrNoDeliveryRecord
	}
	return nil
}
