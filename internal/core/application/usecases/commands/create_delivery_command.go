package commands

import (
	"errors"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/ports"
	"console/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)

	// ErrDeliveryFieldsRequired is the single combined validation error for
	// delivery creation. The source console reports one message for any
	// missing field rather than per-field errors; that behavior is kept.
	ErrDeliveryFieldsRequired = errors.New("fill in all delivery fields")
)

// CreateDeliveryCommand represents a delivery assignment for a paid order:
// the dispatching employee plus the recipient's name, phone and address.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	employeeID  int64
	name        string
	phoneNumber string
	address     string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a delivery creation command. All four
// delivery fields are mandatory; any missing one fails with the combined
// ErrDeliveryFieldsRequired before a network call is made.
func NewCreateDeliveryCommand(
	orderID kernel.OrderID,
	employeeID int64,
	name string,
	phoneNumber string,
	address string,
) (CreateDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateDeliveryCommand{}, err
	}

	if employeeID <= 0 || name == "" || phoneNumber == "" || address == "" {
		return CreateDeliveryCommand{}, ErrDeliveryFieldsRequired
	}

	return CreateDeliveryCommand{
		orderID:     orderID,
		employeeID:  employeeID,
		name:        name,
		phoneNumber: phoneNumber,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CreateDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Request returns the gateway payload for the delivery creation.
func (c CreateDeliveryCommand) Request() ports.DeliveryRequest {
	return ports.DeliveryRequest{
		EmployeeID:  c.employeeID,
		Name:        c.name,
		PhoneNumber: c.phoneNumber,
		Address:     c.address,
	}
}
