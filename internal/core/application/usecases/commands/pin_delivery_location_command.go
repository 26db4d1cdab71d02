package commands

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/guard"
)

var ErrPinDeliveryLocationCommandIsNotConstructed = errors.New(
	"PinDeliveryLocationCommand must be created via NewPinDeliveryLocationCommand constructor",
)

// PinDeliveryLocationCommand re-pins the buyer's doorstep coordinate on a
// delivery order before it goes out. The delivery fee was priced from the
// checkout pin and is not recomputed.
type PinDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPinDeliveryLocationCommand creates a command to update a delivery
// order's pinned location.
func NewPinDeliveryLocationCommand(
	orderID kernel.UUID,
	location kernel.GeoPoint,
) (PinDeliveryLocationCommand, error) {
	if err := errors.Join(orderID.Validate(), location.Validate()); err != nil {
		return PinDeliveryLocationCommand{}, err
	}

	return PinDeliveryLocationCommand{
		orderID:  orderID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PinDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrPinDeliveryLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to re-pin.
func (c PinDeliveryLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Location returns the new doorstep coordinate.
func (c PinDeliveryLocationCommand) Location() kernel.GeoPoint {
	return c.location
}
