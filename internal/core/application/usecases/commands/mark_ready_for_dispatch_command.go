package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/guard"
)

var ErrMarkReadyForDispatchCommandIsNotConstructed = errors.New(
	"MarkReadyForDispatchCommand must be created via NewMarkReadyForDispatchCommand constructor",
)

// MarkReadyForDispatchCommand signals that the shop has finished preparing
// a delivery order and it is waiting for a driver.
type MarkReadyForDispatchCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyForDispatchCommand creates a command to mark a delivery order
// ready for dispatch.
func NewMarkReadyForDispatchCommand(orderID kernel.UUID) (MarkReadyForDispatchCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkReadyForDispatchCommand{}, err
	}

	return MarkReadyForDispatchCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForDispatchCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForDispatchCommandIsNotConstructed)
}

// OrderID returns the identifier of the prepared order.
func (c MarkReadyForDispatchCommand) OrderID() kernel.UUID {
	return c.orderID
}
