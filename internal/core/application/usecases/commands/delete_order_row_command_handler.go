package commands

import (
	"context"
	"errors"

	"pharmacy/internal/pkg/errs"
)

// DeleteOrderRowCommandHandler removes an order ledger row and everything
// downstream of it. Deletion runs leaf to root inside one transaction:
// process row first, then the fulfillment row, then the order row, so no
// partial failure can strand a downstream row pointing at a missing parent.
type DeleteOrderRowCommandHandler struct {
	uowFactory PipelineUoWFactory
}

// NewDeleteOrderRowCommandHandler creates a handler for cascading order row
// deletion. Requires a PipelineUoWFactory spanning all three stages.
func NewDeleteOrderRowCommandHandler(uowFactory PipelineUoWFactory) DeleteOrderRowCommandHandler {
	return DeleteOrderRowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cascading delete.
// Returns ErrOrderRowNotFound when the target id matches no live row.
func (h DeleteOrderRowCommandHandler) Handle(ctx context.Context, cmd DeleteOrderRowCommand) error {
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

	orderRepo := uow.OrderRowRepository()
	fulfillmentRepo := uow.FulfillmentRepository()
	processRepo := uow.ProcessRepository()

	order, err := orderRepo.Get(ctx, cmd.RowID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderRowNotFound
	}
	if err != nil {
		return err
	}

	fulfillmentRow, err := fulfillmentRepo.GetByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if fulfillmentRow != nil {
		processRow, err := processRepo.GetByFulfillment(ctx, fulfillmentRow.ID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if processRow != nil {
			if err = processRepo.Delete(ctx, processRow.ID()); err != nil {
				return err
			}
		}

		if err = fulfillmentRepo.Delete(ctx, fulfillmentRow.ID()); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, order.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
