package commands

import (
	"context"
	"errors"

	"pharmacy/internal/pkg/errs"
)

var ErrFulfillmentRowNotFound = errors.New("fulfillment row not found")

// UpdateFulfillmentCommandHandler writes the user-entered amounts on one
// fulfillment row. The derived cost fields are never stored; they are
// recomputed from these amounts on every read.
type UpdateFulfillmentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewUpdateFulfillmentCommandHandler creates a handler for fulfillment amount
// updates. Requires a FulfillmentUoWFactory for transactional persistence.
func NewUpdateFulfillmentCommandHandler(uowFactory FulfillmentUoWFactory) UpdateFulfillmentCommandHandler {
	return UpdateFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the amount update.
// Returns ErrFulfillmentRowNotFound when the target id matches no live row.
func (h UpdateFulfillmentCommandHandler) Handle(ctx context.Context, cmd UpdateFulfillmentCommand) error {
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

	fulfillmentRepo := uow.FulfillmentRepository()

	row, err := fulfillmentRepo.Get(ctx, cmd.FulfillmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrFulfillmentRowNotFound
	}
	if err != nil {
		return err
	}

	row.SetAmounts(cmd.FinalOrder(), cmd.Bonus())

	if err = fulfillmentRepo.Update(ctx, row); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
