// Package ports defines the contracts between the workflow engine and its
// collaborators: the external order service, the local caches and stores, and
// the notification surfaces. These interfaces keep the application core free
// of transport and storage concerns.
package ports

import (
	"context"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
)

// DeliveryRequest carries the four mandatory fields of a delivery creation.
// Field-level validation happens in the command layer before a gateway call
// is ever made.
type DeliveryRequest struct {
	EmployeeID  int64
	Name        string
	PhoneNumber string
	Address     string
}

// OrderGateway is the client-side contract for the external order service.
// Every mutating call returns the full updated order aggregate from the
// response envelope; the caller replaces its local state with it wholesale.
// Implementations attach the bearer token from the session store and clear
// the session on HTTP 401.
type OrderGateway interface {
	// GetOrder fetches the canonical aggregate for an order.
	GetOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// SubmitPayment posts a validated payment action for the order.
	// planID is the payment plan id; 0 is the full-payment sentinel.
	SubmitPayment(ctx context.Context, id kernel.OrderID, paymentType order.PaymentType, planID int64) (*order.Order, error)

	// CreateDelivery posts a validated delivery assignment for the order.
	CreateDelivery(ctx context.Context, id kernel.OrderID, req DeliveryRequest) (*order.Order, error)

	// UpdateDeliveryStatus moves the order's delivery record to a new status.
	UpdateDeliveryStatus(ctx context.Context, id kernel.OrderID, status order.DeliveryStatus) (*order.Order, error)

	// AdvanceStatus asks the server to move the order to the computed next
	// status. contractNumber is forwarded when present and empty otherwise.
	AdvanceStatus(ctx context.Context, id kernel.OrderID, next order.Status, contractNumber string) (*order.Order, error)
}
