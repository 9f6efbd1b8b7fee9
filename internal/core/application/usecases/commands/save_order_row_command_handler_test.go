package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveOrderRowCommandHandler_Handle_CreatesVacantPosition(t *testing.T) {
	ctx := t.Context()

	record, err := catalog.NewRecord(
		kernel.NewUUID(), "Paracetamol", "Panadol", "GSK", 24, 12, decimal.NewFromInt(3), nil,
	)
	require.NoError(t, err)

	cmd, err := commands.NewSaveOrderRowCommand(1, "Paracetamol", 10, 5, 2, false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRowRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRowRepository").Return(orderRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetBySubstance", ctx, "Paracetamol").Return(record, nil).Once(),
		orderRepo.On("GetByRowNumber", ctx, 1).Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*orderrow.Row")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveOrderRowCommandHandler(factory)
	rowID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, rowID.Validate())

	added := orderRepo.Calls[1].Arguments[1].(*orderrow.Row)
	assert.Equal(t, 15.0, added.FinalBalance())
	assert.Equal(t, 120.0, added.RequestedUnits())
	assert.Equal(t, 48.0, added.ConfirmedUnits())

	orderRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveOrderRowCommandHandler_Handle_ReplacesOccupiedPosition(t *testing.T) {
	ctx := t.Context()

	existing, err := orderrow.NewRow(kernel.NewUUID(), 1, "Paracetamol", 1, 1, 1, 24, false)
	require.NoError(t, err)

	cmd, err := commands.NewSaveOrderRowCommand(1, "Ibuprofen", 4, 2, 0, true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRowRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRowRepository").Return(orderRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetBySubstance", ctx, "Ibuprofen").Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("GetByRowNumber", ctx, 1).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveOrderRowCommandHandler(factory)
	rowID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, rowID.IsEqual(existing.ID()))
	assert.Equal(t, "Ibuprofen", existing.Substance())
	assert.Equal(t, 6.0, existing.FinalBalance())
	// No catalog record for the new substance yet, units convert with factor 0.
	assert.Equal(t, 0.0, existing.RequestedUnits())
	assert.True(t, existing.Urgent())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSaveOrderRowCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SaveOrderRowCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewSaveOrderRowCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSaveOrderRowCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
