package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand moves an escrowed make-to-order request into the
// preparation pipeline. The shop has reviewed the request and committed to
// making the items, so the held payment becomes part of its pending
// balance.
type AcceptRequestCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRequestCommand creates a command to accept an escrowed order
// request.
func NewAcceptRequestCommand(orderID kernel.UUID) (AcceptRequestCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptRequestCommand{}, err
	}

	return AcceptRequestCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}
