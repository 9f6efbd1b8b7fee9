package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrUpdateProcessCommandIsNotConstructed = errors.New(
		"UpdateProcessCommand must be created via NewUpdateProcessCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one of box number or status must be provided")
)

// UpdateProcessCommand represents a partial update of one process row. Box
// number and status are optional independently; an absent field leaves the
// stored value untouched.
type UpdateProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID
	boxNumber *string
	status    *process.Status

	guard guard.ConstructorGuard
}

// NewUpdateProcessCommand creates a command to update a process row. At least
// one of boxNumber and status must be non-nil; a provided status must be a
// member of the known set.
func NewUpdateProcessCommand(processID kernel.UUID, boxNumber *string, status *process.Status) (UpdateProcessCommand, error) {
	if err := processID.Validate(); err != nil {
		return UpdateProcessCommand{}, err
	}
	if boxNumber == nil && status == nil {
		return UpdateProcessCommand{}, ErrNothingToUpdate
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateProcessCommand{}, err
		}
	}

	return UpdateProcessCommand{
		processID: processID,
		boxNumber: boxNumber,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProcessCommandIsNotConstructed if validation fails.
func (c UpdateProcessCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProcessCommandIsNotConstructed)
}

// ProcessID returns the target row's identifier.
func (c UpdateProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

// BoxNumber returns the new box label, or nil when the label is not part of
// this update.
func (c UpdateProcessCommand) BoxNumber() *string {
	return c.boxNumber
}

// Status returns the new handling status, or nil when the status is not part
// of this update.
func (c UpdateProcessCommand) Status() *process.Status {
	return c.status
}
