package commands

import (
	"context"

	"pharmacy/internal/core/domain/services"
)

// UpsertCatalogBatchCommandHandler merges candidate catalog rows into the
// store. Classification is delegated to CatalogMerger; this handler owns the
// transaction and persists the resulting inserts and updates.
//
// A duplicate or rejected candidate never aborts the batch: it is reported in
// the per-row outcomes while the remaining candidates are still written.
type UpsertCatalogBatchCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpsertCatalogBatchCommandHandler creates a handler for catalog batch
// merges. Requires a CatalogUoWFactory for transactional persistence.
func NewUpsertCatalogBatchCommandHandler(uowFactory CatalogUoWFactory) UpsertCatalogBatchCommandHandler {
	return UpsertCatalogBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch merge command.
// Loads the current catalog, classifies every candidate against it, and
// persists the inserts and updates in a single transaction. Returns the
// per-row outcomes and the aggregated summary.
func (h UpsertCatalogBatchCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertCatalogBatchCommand,
) (services.MergeResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.MergeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.MergeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	existing, err := catalogRepo.GetAll(ctx)
	if err != nil {
		return services.MergeResult{}, err
	}

	result := services.NewCatalogMerger().Merge(existing, cmd.Candidates())

	for _, record := range result.Inserts {
		if err = catalogRepo.Add(ctx, record); err != nil {
			return services.MergeResult{}, err
		}
	}

	for _, record := range result.Updates {
		if err = catalogRepo.Update(ctx, record); err != nil {
			return services.MergeResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.MergeResult{}, err
	}

	return result, nil
}
