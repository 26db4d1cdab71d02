package commands

import (
	"context"

	"giftmarket/internal/core/domain/model/order"
)

// AcceptRequestCommandHandler handles shop acceptance of escrowed order
// requests. Loads the order, applies the Pending→Paid transition, and
// persists it with a status-conditional update so a concurrent decline
// cannot interleave.
//
// Example:
//
//	handler := NewAcceptRequestCommandHandler(uowFactory)
//	cmd, _ := NewAcceptRequestCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("accept failed: %w", err)
//	}
type AcceptRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptRequestCommandHandler creates a handler for order acceptance.
func NewAcceptRequestCommandHandler(uowFactory OrderUoWFactory) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Returns errs.ObjectNotFoundError for unknown orders,
// errs.InvalidTransitionError when the order is not pending, and
// errs.ConcurrentModificationError when another writer moved the order
// between the read and the conditional write.
func (h AcceptRequestCommandHandler) Handle(ctx context.Context, cmd AcceptRequestCommand) error {
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

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, order.Pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
