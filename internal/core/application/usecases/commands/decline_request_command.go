package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/guard"
)

var ErrDeclineRequestCommandIsNotConstructed = errors.New(
	"DeclineRequestCommand must be created via NewDeclineRequestCommand constructor",
)

// DeclineRequestCommand rejects an escrowed make-to-order request. The held
// payment is returned to the buyer through the payment collaborator.
type DeclineRequestCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineRequestCommand creates a command to decline an escrowed order
// request.
func NewDeclineRequestCommand(orderID kernel.UUID) (DeclineRequestCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeclineRequestCommand{}, err
	}

	return DeclineRequestCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeclineRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to decline.
func (c DeclineRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}
