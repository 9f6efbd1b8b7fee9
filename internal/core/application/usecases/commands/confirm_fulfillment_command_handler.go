package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/errs"
)

// ConfirmFulfillmentCommandHandler confirms every unconfirmed fulfillment row
// in one transaction. Each confirmation creates the row's process record,
// guarded by a lookup so a fulfillment row can never accumulate more than one
// process row. Already confirmed rows are not revisited, which makes the
// operation idempotent.
type ConfirmFulfillmentCommandHandler struct {
	uowFactory PipelineUoWFactory
}

// NewConfirmFulfillmentCommandHandler creates a handler for batch
// confirmation. Requires a PipelineUoWFactory for transactional persistence.
func NewConfirmFulfillmentCommandHandler(uowFactory PipelineUoWFactory) ConfirmFulfillmentCommandHandler {
	return ConfirmFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch confirmation and returns the number of rows
// confirmed. A second call with nothing left unconfirmed returns zero.
func (h ConfirmFulfillmentCommandHandler) Handle(ctx context.Context, cmd ConfirmFulfillmentCommand) (int, error) {
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

	fulfillmentRepo := uow.FulfillmentRepository()
	processRepo := uow.ProcessRepository()

	rows, err := fulfillmentRepo.GetAllUnconfirmed(ctx)
	if err != nil {
		return 0, err
	}

	confirmed := 0
	for _, row := range rows {
		_, err = processRepo.GetByFulfillment(ctx, row.ID())
		switch {
		case err == nil:
			// Process row already exists, only the flag needs repair.
		case errors.Is(err, errs.ErrObjectNotFound):
			processRow, err := process.NewRow(kernel.NewUUID(), row.ID(), row.OrderID(), row.RowNumber())
			if err != nil {
				return 0, err
			}

			if err = processRepo.Add(ctx, processRow); err != nil {
				return 0, err
			}
		default:
			return 0, err
		}

		row.Confirm()
		if err = fulfillmentRepo.Update(ctx, row); err != nil {
			return 0, err
		}
		confirmed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return confirmed, nil
}
