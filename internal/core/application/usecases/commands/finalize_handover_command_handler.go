package commands

import (
	"context"
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/ports"
	"giftmarket/internal/pkg/errs"
)

// FinalizeHandoverCommandHandler closes orders at handover. Routes by
// collection strategy: pickup orders close through token-verified
// collection, dispatched delivery orders through the shop's handover
// attestation. The status-conditional write makes concurrent finalize
// attempts yield exactly one success; the loser observes the winner's
// Collected row and gets an AlreadyCollectedError, so double-submitting a
// finalize is safe.
//
// Example:
//
//	handler := NewFinalizeHandoverCommandHandler(uowFactory)
//	cmd, _ := NewFinalizeHandoverCommand(orderID, order.VerifiedByScan, photoRef)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyCollected) {
//	    log.Println("order was already handed over")
//	}
type FinalizeHandoverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinalizeHandoverCommandHandler creates a handler for order
// finalization.
func NewFinalizeHandoverCommandHandler(uowFactory OrderUoWFactory) FinalizeHandoverCommandHandler {
	return FinalizeHandoverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalize command.
// Returns errs.AlreadyCollectedError when the order is already closed
// (including losing a finalize race to a writer that collected it) and
// errs.ConcurrentModificationError when a concurrent writer moved the
// order somewhere other than Collected.
func (h FinalizeHandoverCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeHandoverCommand,
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

	if aggregate.Status() == order.Collected {
		return errs.NewAlreadyCollectedError(aggregate.ID().String())
	}

	expectedStatus := aggregate.Status()
	if err = h.close(aggregate, cmd); err != nil {
		return err
	}

	err = orderRepo.UpdateWithStatus(ctx, aggregate, expectedStatus)
	if errors.Is(err, errs.ErrConcurrentModification) {
		return h.resolveRace(ctx, orderRepo, cmd.OrderID(), err)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h FinalizeHandoverCommandHandler) close(
	aggregate *order.Order,
	cmd FinalizeHandoverCommand,
) error {
	aggregate.AttachCollectionPhoto(cmd.PhotoRef())

	if aggregate.DeliveryMethod() == kernel.DeliveryMethodPickup {
		return aggregate.Collect(cmd.Verification())
	}
	return aggregate.ConfirmHandover()
}

// resolveRace distinguishes losing a finalize race from other concurrent
// interference: when the winner collected the order the retry-equivalent
// answer is "already collected", anything else surfaces the conflict.
func (h FinalizeHandoverCommandHandler) resolveRace(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	orderID kernel.UUID,
	conflict error,
) error {
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return conflict
	}
	if current.Status() == order.Collected {
		return errs.NewAlreadyCollectedError(orderID.String())
	}
	return conflict
}
