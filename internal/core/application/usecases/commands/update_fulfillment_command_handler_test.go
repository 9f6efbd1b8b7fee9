package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateFulfillmentCommand_RejectsInvalidID(t *testing.T) {
	var invalidID kernel.UUID
	_, err := commands.NewUpdateFulfillmentCommand(invalidID, 10, 1)
	require.Error(t, err)
}

func TestNewUpdateFulfillmentCommand_RejectsNegativeAmounts(t *testing.T) {
	_, err := commands.NewUpdateFulfillmentCommand(kernel.NewUUID(), -1, 0)
	require.Error(t, err)

	_, err = commands.NewUpdateFulfillmentCommand(kernel.NewUUID(), 0, -1)
	require.Error(t, err)
}

func TestUpdateFulfillmentCommandHandler_Handle_WritesAmounts(t *testing.T) {
	ctx := t.Context()

	row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateFulfillmentCommand(row.ID(), 10, 1.5)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Get", ctx, row.ID()).Return(row, nil).Once(),
		fulfillmentRepo.On("Update", ctx, row).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 10.0, row.FinalOrder())
	assert.Equal(t, 1.5, row.Bonus())

	fulfillmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateFulfillmentCommandHandler_Handle_AllowsClearingToZero(t *testing.T) {
	ctx := t.Context()

	row, err := fulfillment.NewRow(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	row.SetAmounts(10, 2)

	cmd, err := commands.NewUpdateFulfillmentCommand(row.ID(), 0, 0)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Get", ctx, row.ID()).Return(row, nil).Once(),
		fulfillmentRepo.On("Update", ctx, row).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0.0, row.FinalOrder())
	assert.Equal(t, 0.0, row.Bonus())
}

func TestUpdateFulfillmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateFulfillmentCommand(kernel.NewUUID(), 5, 0)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once(),
		fulfillmentRepo.On("Get", ctx, mock.Anything).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrFulfillmentRowNotFound)
}

func TestUpdateFulfillmentCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	handler := commands.NewUpdateFulfillmentCommandHandler(new(MockFulfillmentUoWFactory))

	err := handler.Handle(t.Context(), commands.UpdateFulfillmentCommand{})

	require.Error(t, err)
}
