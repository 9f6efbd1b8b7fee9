package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/services"
)

var ErrOrderRowNotFound = errors.New("order row not found")

// SetUrgentCommandHandler flips the urgency flag of one order ledger row and
// renumbers the full live set so urgent rows occupy the leading positions.
// The flag write and the renumbering land in one transaction; a reader never
// observes a half-reordered ledger.
type SetUrgentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetUrgentCommandHandler creates a handler for urgency toggles.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetUrgentCommandHandler(uowFactory OrderUoWFactory) SetUrgentCommandHandler {
	return SetUrgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the urgency toggle.
// Loads every live row, flips the flag on the target, reorders the set with
// PriorityReorderer, and persists all rows. Returns ErrOrderRowNotFound when
// the target id matches no live row.
func (h SetUrgentCommandHandler) Handle(ctx context.Context, cmd SetUrgentCommand) error {
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

	rows, err := orderRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if row.ID().IsEqual(cmd.RowID()) {
			row.SetUrgent(cmd.Urgent())
			found = true
			break
		}
	}
	if !found {
		return ErrOrderRowNotFound
	}

	if err = services.NewPriorityReorderer().Reorder(rows); err != nil {
		return err
	}

	for _, row := range rows {
		if err = orderRepo.Update(ctx, row); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
