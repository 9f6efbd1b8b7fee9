package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// CleanupOrphanedBlobsCommandHandler reclaims blobs that lost their catalog
// reference, typically after a failed transaction or a best-effort delete
// that never reached the store.
type CleanupOrphanedBlobsCommandHandler struct {
	uowFactory CatalogUoWFactory
	blobStore  ports.BlobStore
}

// NewCleanupOrphanedBlobsCommandHandler creates a handler for orphaned blob
// cleanup.
func NewCleanupOrphanedBlobsCommandHandler(
	uowFactory CatalogUoWFactory,
	blobStore ports.BlobStore,
) CleanupOrphanedBlobsCommandHandler {
	return CleanupOrphanedBlobsCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
	}
}

// Handle deletes every blob stored before the cutoff that no catalog record
// references. Returns the number of blobs removed.
func (h CleanupOrphanedBlobsCommandHandler) Handle(ctx context.Context, cmd CleanupOrphanedBlobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	records, err := uow.CatalogRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	referenced := make(map[string]bool, len(records))
	for _, record := range records {
		if imageID := record.ImageID(); imageID != nil {
			referenced[imageID.String()] = true
		}
	}

	blobIDs, err := h.blobStore.ListCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range blobIDs {
		if referenced[id.String()] {
			continue
		}

		if err = h.blobStore.Delete(ctx, id); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
