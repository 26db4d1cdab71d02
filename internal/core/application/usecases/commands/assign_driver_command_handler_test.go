package commands_test

import (
	"testing"

	"giftmarket/internal/core/application/usecases/commands"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ready := newDeliveryOrder(t)
	require.NoError(t, ready.MarkReadyForDispatch())
	cmd, err := commands.NewAssignDriverCommand(ready.ID(), testDriver(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, ready.ID()).Return(ready, nil).Once(),
		repo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*order.Order"), order.ReadyForDispatch).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Dispatched, ready.Status())
	require.NotNil(t, ready.Driver())
	assert.Equal(t, "Musa Otieno", ready.Driver().Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	paid := newDeliveryOrder(t) // still Paid, not yet marked ready
	cmd, err := commands.NewAssignDriverCommand(paid.ID(), testDriver(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, paid.ID()).Return(paid, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, paid.Driver())
}

func TestAssignDriverCommandHandler_Handle_AlreadyDispatched(t *testing.T) {
	ctx := t.Context()
	dispatched := newDispatchedOrder(t)
	cmd, err := commands.NewAssignDriverCommand(dispatched.ID(), testDriver(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, dispatched.ID()).Return(dispatched, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestAssignDriverCommandHandler_Handle_LostDispatchRace(t *testing.T) {
	ctx := t.Context()
	ready := newDeliveryOrder(t)
	require.NoError(t, ready.MarkReadyForDispatch())
	cmd, err := commands.NewAssignDriverCommand(ready.ID(), testDriver(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, ready.ID()).Return(ready, nil).Once(),
		repo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*order.Order"), order.ReadyForDispatch).
			Return(errs.NewConcurrentModificationError(ready.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	handler := commands.NewAssignDriverCommandHandler(factory)
	err := handler.Handle(ctx, commands.AssignDriverCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
