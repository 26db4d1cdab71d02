package commands

import (
	"context"
)

// PinDeliveryLocationCommandHandler handles re-pinning the delivery
// location on an order that has not yet been dispatched. The aggregate
// rejects the pin for pickup orders and for orders already past
// preparation.
type PinDeliveryLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPinDeliveryLocationCommandHandler creates a handler for the re-pin
// operation.
func NewPinDeliveryLocationCommandHandler(
	uowFactory OrderUoWFactory,
) PinDeliveryLocationCommandHandler {
	return PinDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the re-pin command.
func (h PinDeliveryLocationCommandHandler) Handle(
	ctx context.Context,
	cmd PinDeliveryLocationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.PinDeliveryLocation(cmd.Location()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
