package commands

import (
	"context"

	"giftmarket/internal/core/domain/model/order"
)

// MarkReadyForDispatchCommandHandler handles the Paid→ReadyForDispatch
// transition for delivery orders. The aggregate rejects the transition for
// pickup orders and for delivery orders without a pinned location.
type MarkReadyForDispatchCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkReadyForDispatchCommandHandler creates a handler for the
// ready-for-dispatch operation.
func NewMarkReadyForDispatchCommandHandler(
	uowFactory OrderUoWFactory,
) MarkReadyForDispatchCommandHandler {
	return MarkReadyForDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ready-for-dispatch command.
func (h MarkReadyForDispatchCommandHandler) Handle(
	ctx context.Context,
	cmd MarkReadyForDispatchCommand,
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

	if err = aggregate.MarkReadyForDispatch(); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, order.Paid); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
