// Package order provides domain entities and business logic for the order
// lifecycle workflow of the dealership console. It implements the Order
// aggregate root together with the status state machines that gate payment,
// delivery and the generic advance action.
//
// The package includes:
//   - Order: The aggregate root holding line items, payment records and the delivery record
//   - Status: The order status state machine (PENDING -> PENDING_DELIVERY -> DELIVERED,
//     with PAID and INSTALLMENT driven entirely by the server)
//   - Payment / Delivery: records carried on the aggregate
//   - Badge lookups: the status vocabulary shared by every screen
//
// Key business rules:
//   - Status only changes through an explicit, allowed action; it is never free-set
//   - Payment is permitted only while the order is PENDING
//   - Delivery creation is permitted only while the order is PAID
//   - Delivery status updates only require an existing delivery record
//   - A status outside the rule table permits no action at all
package order
