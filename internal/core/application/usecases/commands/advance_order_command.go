package commands

import (
	"errors"

	"console/internal/core/domain/model/kernel"
	"console/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand pushes an order one step along the canonical chain.
// The target status is never supplied by the caller; it is computed from the
// current aggregate when the command is handled. The optional contract number
// is forwarded verbatim for steps where the back office records one.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.OrderID
	contractNumber string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance command. contractNumber may be empty.
func NewAdvanceOrderCommand(orderID kernel.OrderID, contractNumber string) (AdvanceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID:        orderID,
		contractNumber: contractNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ContractNumber returns the optional contract number, empty when none was given.
func (c AdvanceOrderCommand) ContractNumber() string {
	return c.contractNumber
}
