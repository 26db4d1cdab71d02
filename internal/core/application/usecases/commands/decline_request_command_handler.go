package commands

import (
	"context"

	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/ports"
)

// DeclineRequestCommandHandler handles shop rejection of escrowed order
// requests. Applies the Pending→Rejected transition, emits a refund event
// to the payment collaborator, and persists the order inside one
// transaction so the refund is never emitted for an order that stays
// pending.
//
// Example:
//
//	handler := NewDeclineRequestCommandHandler(uowFactory, paymentGateway)
//	cmd, _ := NewDeclineRequestCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("decline failed: %w", err)
//	}
type DeclineRequestCommandHandler struct {
	uowFactory     OrderUoWFactory
	paymentGateway ports.PaymentGateway
}

// NewDeclineRequestCommandHandler creates a handler for order rejection.
// Requires the payment gateway port for refunding the escrowed amount.
func NewDeclineRequestCommandHandler(
	uowFactory OrderUoWFactory,
	paymentGateway ports.PaymentGateway,
) DeclineRequestCommandHandler {
	return DeclineRequestCommandHandler{
		uowFactory:     uowFactory,
		paymentGateway: paymentGateway,
	}
}

// Handle processes the decline command.
// The refund event is emitted after the conditional status write succeeds
// and before commit: a concurrent accept that wins the race rolls this
// transaction back with no refund sent.
func (h DeclineRequestCommandHandler) Handle(ctx context.Context, cmd DeclineRequestCommand) error {
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

	if err = aggregate.Decline(); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, order.Pending); err != nil {
		return err
	}

	if err = h.paymentGateway.Refund(ctx, aggregate.ID(), aggregate.Totals().Total()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
