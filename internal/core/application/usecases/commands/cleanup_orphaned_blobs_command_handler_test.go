package commands_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCleanupOrphanedBlobsCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewCleanupOrphanedBlobsCommand(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCutoffIsRequired)
}

func TestCleanupOrphanedBlobsCommandHandler_Handle_KeepsReferencedBlobs(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	referencedID := kernel.NewUUID()
	orphanID := kernel.NewUUID()

	record, err := catalog.NewRecord(
		kernel.NewUUID(), "Paracetamol", "Panadol", "GSK", 24, 12, decimal.NewFromInt(3), &referencedID,
	)
	require.NoError(t, err)

	cmd, err := commands.NewCleanupOrphanedBlobsCommand(cutoff)
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	blobStore := new(MockBlobStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetAll", ctx).Return([]*catalog.Record{record}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		blobStore.On("ListCreatedBefore", ctx, cutoff).Return([]kernel.UUID{referencedID, orphanID}, nil).Once(),
		blobStore.On("Delete", ctx, orphanID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCleanupOrphanedBlobsCommandHandler(factory, blobStore)
	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	blobStore.AssertNotCalled(t, "Delete", ctx, referencedID)
	blobStore.AssertExpectations(t)
}
