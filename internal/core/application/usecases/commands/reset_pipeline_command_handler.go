package commands

import (
	"context"
	"time"

	"pharmacy/internal/core/ports"
)

// ResetPipelineResponse reports how many rows each table lost during a reset.
type ResetPipelineResponse struct {
	CatalogRecords  int
	OrderRows       int
	FulfillmentRows int
	ProcessRows     int
	ArchiveBundles  int
	Blobs           int
}

// ResetPipelineCommandHandler wipes every pipeline table in one transaction,
// then deletes stored blobs outside of it. Table deletion runs leaf to root,
// mirroring the cascading delete of a single order row.
type ResetPipelineCommandHandler struct {
	uowFactory ArchiveUoWFactory
	blobStore  ports.BlobStore
}

// NewResetPipelineCommandHandler creates a handler for full pipeline resets.
func NewResetPipelineCommandHandler(
	uowFactory ArchiveUoWFactory,
	blobStore ports.BlobStore,
) ResetPipelineCommandHandler {
	return ResetPipelineCommandHandler{
		uowFactory: uowFactory,
		blobStore:  blobStore,
	}
}

// Handle processes the reset and returns per-table deletion counts.
func (h ResetPipelineCommandHandler) Handle(ctx context.Context, cmd ResetPipelineCommand) (ResetPipelineResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ResetPipelineResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	response := ResetPipelineResponse{}
	var err error

	if response.ProcessRows, err = uow.ProcessRepository().DeleteAll(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}
	if response.FulfillmentRows, err = uow.FulfillmentRepository().DeleteAll(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}
	if response.OrderRows, err = uow.OrderRowRepository().DeleteAll(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}
	if response.CatalogRecords, err = uow.CatalogRepository().DeleteAll(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}
	if response.ArchiveBundles, err = uow.ArchiveRepository().DeleteAll(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ResetPipelineResponse{}, err
	}

	// Every blob is unreferenced now; reclaim them all.
	blobIDs, err := h.blobStore.ListCreatedBefore(ctx, time.Now().UTC())
	if err != nil {
		return response, err
	}
	for _, id := range blobIDs {
		if err = h.blobStore.Delete(ctx, id); err != nil {
			return response, err
		}
		response.Blobs++
	}

	return response, nil
}
