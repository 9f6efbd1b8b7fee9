package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/pkg/errs"
)

// SaveOrderRowCommandHandler writes one order ledger row. The row number is
// the upsert key: a vacant position creates a row, an occupied position
// replaces the existing row's fields while keeping its identity, so
// downstream fulfillment and process rows stay attached.
//
// The unit-level quantities are derived with the catalog's order-side
// pack-to-unit factor. A substance with no catalog record yet converts with a
// factor of zero; the derived units heal on the next save after the record
// appears.
type SaveOrderRowCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSaveOrderRowCommandHandler creates a handler for order ledger writes.
// Requires an OrderUoWFactory for transactional persistence.
func NewSaveOrderRowCommandHandler(uowFactory OrderUoWFactory) SaveOrderRowCommandHandler {
	return SaveOrderRowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command and returns the id of the created or
// replaced row.
func (h SaveOrderRowCommandHandler) Handle(ctx context.Context, cmd SaveOrderRowCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRowRepository()
	catalogRepo := uow.CatalogRepository()

	unitsPerPackLocal := 0.0
	record, err := catalogRepo.GetBySubstance(ctx, cmd.Substance())
	switch {
	case err == nil:
		unitsPerPackLocal = record.UnitsPerPackLocal()
	case errors.Is(err, errs.ErrObjectNotFound):
		// No catalog record yet; quantities convert with factor 0.
	default:
		return kernel.UUID{}, err
	}

	existing, err := orderRepo.GetByRowNumber(ctx, cmd.RowNumber())
	switch {
	case err == nil:
		if err = existing.ChangeSubstance(cmd.Substance()); err != nil {
			return kernel.UUID{}, err
		}
		existing.ApplyQuantities(cmd.CurrentBalance(), cmd.RequestedPacks(), cmd.ConfirmedPacks(), unitsPerPackLocal)
		existing.SetUrgent(cmd.Urgent())

		if err = orderRepo.Update(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}

		return existing.ID(), nil
	case errors.Is(err, errs.ErrObjectNotFound):
		// Position is vacant, fall through to create.
	default:
		return kernel.UUID{}, err
	}

	row, err := orderrow.NewRow(
		kernel.NewUUID(),
		cmd.RowNumber(),
		cmd.Substance(),
		cmd.CurrentBalance(),
		cmd.RequestedPacks(),
		cmd.ConfirmedPacks(),
		unitsPerPackLocal,
		cmd.Urgent(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, row); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return row.ID(), nil
}
