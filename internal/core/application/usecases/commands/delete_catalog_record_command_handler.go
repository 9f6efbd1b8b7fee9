package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

var ErrCatalogRecordNotFound = errors.New("catalog record not found")

// DeleteCatalogRecordCommandHandler removes a catalog record. Live order rows
// referencing the substance are deliberately left alone; their enrichment
// degrades to zero values on the read side.
//
// The attached image blob is deleted after the transaction commits. Blob
// storage sits outside the unit of work, so a failed blob delete leaves an
// orphan for the cleanup job rather than a half-rolled-back record.
type DeleteCatalogRecordCommandHandler struct {
	uowFactory CatalogUoWFactory
	blobStore  ports.BlobStore
}

// NewDeleteCatalogRecordCommandHandler creates a handler for catalog record
// deletion.
func NewDeleteCatalogRecordCommandHandler(
	uowFactory CatalogUoWFactory,
	blobStore ports.BlobStore,
) DeleteCatalogRecordCommandHandler {
	return DeleteCatalogRecordCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
	}
}

// Handle processes the deletion.
// Returns ErrCatalogRecordNotFound when the target id matches no record.
func (h DeleteCatalogRecordCommandHandler) Handle(ctx context.Context, cmd DeleteCatalogRecordCommand) error {
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

	catalogRepo := uow.CatalogRepository()

	record, err := catalogRepo.Get(ctx, cmd.RecordID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCatalogRecordNotFound
	}
	if err != nil {
		return err
	}

	if err = catalogRepo.Delete(ctx, record.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if imageID := record.ImageID(); imageID != nil {
		// Best effort; the cleanup job reclaims the blob if this fails.
		_ = h.blobStore.Delete(ctx, *imageID)
	}

	return nil
}
