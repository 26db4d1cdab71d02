package commands

import (
	"context"

	"giftmarket/internal/core/domain/model/order"
)

// AssignDriverCommandHandler coordinates dispatch: binds the courier
// descriptor to a ReadyForDispatch order and moves it to Dispatched. The
// status-conditional write guarantees a single order is never sent out with
// two drivers, whichever coordinator instance wins the race.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	driver, _ := order.NewDriverAssignment("Musa", "motorbike", "KAA 123X", "+254700000000")
//	cmd, _ := NewAssignDriverCommand(orderID, driver)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConcurrentModification) {
//	    log.Println("another coordinator dispatched this order first")
//	}
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Returns errs.ConcurrentModificationError when a concurrent assignment
// moved the order out of ReadyForDispatch first.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = aggregate.AssignDriver(cmd.Driver()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, order.ReadyForDispatch); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
