package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// SendToFulfillmentCommandHandler forwards the order ledger to the
// fulfillment stage. For every order row without a fulfillment row it creates
// one with zeroed amounts and confirmed=false; rows already forwarded are
// left untouched, which makes repeated sends idempotent.
type SendToFulfillmentCommandHandler struct {
	uowFactory PipelineUoWFactory
}

// NewSendToFulfillmentCommandHandler creates a handler for forwarding the
// ledger. Requires a PipelineUoWFactory for transactional persistence.
func NewSendToFulfillmentCommandHandler(uowFactory PipelineUoWFactory) SendToFulfillmentCommandHandler {
	return SendToFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send command and returns the number of fulfillment
// rows created. A second send over an unchanged ledger returns zero.
func (h SendToFulfillmentCommandHandler) Handle(ctx context.Context, cmd SendToFulfillmentCommand) (int, error) {
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

	orderRepo := uow.OrderRowRepository()
	fulfillmentRepo := uow.FulfillmentRepository()

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, order := range orders {
		_, err = fulfillmentRepo.GetByOrder(ctx, order.ID())
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return 0, err
		}

		row, err := fulfillment.NewRow(kernel.NewUUID(), order.ID(), order.RowNumber())
		if err != nil {
			return 0, err
		}

		if err = fulfillmentRepo.Add(ctx, row); err != nil {
			return 0, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, nil
}
