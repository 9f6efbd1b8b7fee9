package commands

import (
	"context"
	"errors"

	"pharmacy/internal/pkg/errs"
)

var ErrProcessRowNotFound = errors.New("process row not found")

// UpdateProcessCommandHandler applies a partial update to one process row.
// A box-number-only update never clobbers the status and vice versa.
type UpdateProcessCommandHandler struct {
	uowFactory ProcessUoWFactory
}

// NewUpdateProcessCommandHandler creates a handler for process row updates.
// Requires a ProcessUoWFactory for transactional persistence.
func NewUpdateProcessCommandHandler(uowFactory ProcessUoWFactory) UpdateProcessCommandHandler {
	return UpdateProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partial update.
// Returns ErrProcessRowNotFound when the target id matches no live row.
func (h UpdateProcessCommandHandler) Handle(ctx context.Context, cmd UpdateProcessCommand) error {
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

	processRepo := uow.ProcessRepository()

	row, err := processRepo.Get(ctx, cmd.ProcessID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrProcessRowNotFound
	}
	if err != nil {
		return err
	}

	if cmd.BoxNumber() != nil {
		row.SetBoxNumber(*cmd.BoxNumber())
	}
	if cmd.Status() != nil {
		if err = row.SetStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = processRepo.Update(ctx, row); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
