package commands

import (
	"errors"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves an existing delivery record to a new
// status. Unlike creation it carries no recipient fields; the only
// precondition is that a delivery record already exists.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	status  order.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a delivery status update command.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.OrderID,
	status order.DeliveryStatus,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the requested delivery status.
func (c UpdateDeliveryStatusCommand) Status() order.DeliveryStatus {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status order.DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
