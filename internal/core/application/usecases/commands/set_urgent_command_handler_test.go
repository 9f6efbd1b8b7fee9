package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetUrgentCommandHandler_Handle_FlagMovesRowToTopKeepingOrder(t *testing.T) {
	ctx := t.Context()

	rowA, err := orderrow.NewRow(kernel.NewUUID(), 1, "A", 0, 0, 0, 1, false)
	require.NoError(t, err)
	rowB, err := orderrow.NewRow(kernel.NewUUID(), 2, "B", 0, 0, 0, 1, false)
	require.NoError(t, err)
	rowC, err := orderrow.NewRow(kernel.NewUUID(), 3, "C", 0, 0, 0, 1, false)
	require.NoError(t, err)
	rows := []*orderrow.Row{rowA, rowB, rowC}

	cmd, err := commands.NewSetUrgentCommand(rowB.ID(), true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRowRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRowRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAll", ctx).Return(rows, nil).Once(),
	)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*orderrow.Row")).Return(nil).Times(3)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetUrgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The flagged row takes position 1; the rest keep their relative order.
	assert.Equal(t, 1, rowB.RowNumber())
	assert.Equal(t, 2, rowA.RowNumber())
	assert.Equal(t, 3, rowC.RowNumber())
	assert.True(t, rowB.Urgent())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetUrgentCommandHandler_Handle_UnflagRestoresPlainOrdering(t *testing.T) {
	ctx := t.Context()

	rowB, err := orderrow.NewRow(kernel.NewUUID(), 1, "B", 0, 0, 0, 1, true)
	require.NoError(t, err)
	rowA, err := orderrow.NewRow(kernel.NewUUID(), 2, "A", 0, 0, 0, 1, false)
	require.NoError(t, err)
	rowC, err := orderrow.NewRow(kernel.NewUUID(), 3, "C", 0, 0, 0, 1, false)
	require.NoError(t, err)
	rows := []*orderrow.Row{rowB, rowA, rowC}

	cmd, err := commands.NewSetUrgentCommand(rowB.ID(), false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRowRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRowRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAll", ctx).Return(rows, nil).Once(),
	)
	orderRepo.On("Update", ctx, mock.AnythingOfType("*orderrow.Row")).Return(nil).Times(3)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetUrgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, rowB.Urgent())
	assert.Equal(t, 1, rowB.RowNumber())
	assert.Equal(t, 2, rowA.RowNumber())
	assert.Equal(t, 3, rowC.RowNumber())
}

func TestSetUrgentCommandHandler_Handle_RowNotFound(t *testing.T) {
	ctx := t.Context()

	rowA, err := orderrow.NewRow(kernel.NewUUID(), 1, "A", 0, 0, 0, 1, false)
	require.NoError(t, err)

	cmd, err := commands.NewSetUrgentCommand(kernel.NewUUID(), true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRowRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRowRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAll", ctx).Return([]*orderrow.Row{rowA}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetUrgentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderRowNotFound)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
