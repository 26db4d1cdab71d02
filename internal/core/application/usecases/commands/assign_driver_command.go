package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand binds a courier descriptor to a prepared delivery
// order and sends it out.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	driver  order.DriverAssignment

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to dispatch an order with the
// given courier descriptor.
func NewAssignDriverCommand(
	orderID kernel.UUID,
	driver order.DriverAssignment,
) (AssignDriverCommand, error) {
	if err := errors.Join(orderID.Validate(), driver.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		orderID: orderID,
		driver:  driver,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dispatch.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the courier descriptor to bind.
func (c AssignDriverCommand) Driver() order.DriverAssignment {
	return c.driver
}
