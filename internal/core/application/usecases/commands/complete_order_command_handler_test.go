package commands_test

import (
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newReadyOrder builds an order in Ready status with every item finished.
func newReadyOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, o.ChangeStatus(order.Confirmed, now))
	require.NoError(t, o.ChangeStatus(order.Preparing, now))
	require.NoError(t, o.ChangeStatus(order.Ready, now))

	for _, item := range o.Items() {
		require.NoError(t, o.ChangeItemStatus(item.ID(), order.ItemPreparing))
		require.NoError(t, o.ChangeItemStatus(item.ID(), order.ItemReady))
	}

	return o
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	existing := newReadyOrder(t)
	cmd, err := commands.NewCompleteOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, updated.Status())
	require.NotNil(t, updated.CompletedAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_ItemsNotReady(t *testing.T) {
	ctx := t.Context()

	existing := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, existing.ChangeStatus(order.Confirmed, now))
	require.NoError(t, existing.ChangeStatus(order.Preparing, now))
	require.NoError(t, existing.ChangeStatus(order.Ready, now))
	// items intentionally left in ItemPending

	cmd, err := commands.NewCompleteOrderCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	require.Contains(t, err.Error(), "not ready to serve")
	require.Contains(t, err.Error(), existing.Items()[0].Recipe().Name())

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	require.Equal(t, order.Ready, existing.Status(), "failed completion must leave status untouched")
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteOrderCommandHandler_Handle_NotYetReady(t *testing.T) {
	ctx := t.Context()

	// every item finished, but the order itself is still Preparing
	preparing := newPendingOrder(t)
	now := time.Now().UTC()
	require.NoError(t, preparing.ChangeStatus(order.Confirmed, now))
	require.NoError(t, preparing.ChangeStatus(order.Preparing, now))
	for _, item := range preparing.Items() {
		require.NoError(t, preparing.ChangeItemStatus(item.ID(), order.ItemPreparing))
		require.NoError(t, preparing.ChangeItemStatus(item.ID(), order.ItemReady))
	}

	cmd, err := commands.NewCompleteOrderCommand(preparing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, preparing.ID()).Return(preparing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	require.Contains(t, err.Error(), "cannot transition from Preparing to Completed")
}
