package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrSetUrgentCommandIsNotConstructed = errors.New(
		"SetUrgentCommand must be created via NewSetUrgentCommand constructor",
	)
)

// SetUrgentCommand represents a request to flip the urgency flag of one order
// ledger row. Toggling urgency reorders the whole ledger: urgent rows float to
// the top and every live row gets a fresh dense position.
type SetUrgentCommand struct { //nolint:recvcheck //using for validation
	rowID  kernel.UUID
	urgent bool

	guard guard.ConstructorGuard
}

// NewSetUrgentCommand creates a command to flag or unflag a row as urgent.
func NewSetUrgentCommand(rowID kernel.UUID, urgent bool) (SetUrgentCommand, error) {
	if err := rowID.Validate(); err != nil {
		return SetUrgentCommand{}, err
	}

	return SetUrgentCommand{
		rowID:  rowID,
		urgent: urgent,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetUrgentCommandIsNotConstructed if validation fails.
func (c SetUrgentCommand) Validate() error {
	return c.guard.Validate(ErrSetUrgentCommandIsNotConstructed)
}

// RowID returns the target row's identifier.
func (c SetUrgentCommand) RowID() kernel.UUID {
	return c.rowID
}

// Urgent returns the requested urgency flag.
func (c SetUrgentCommand) Urgent() bool {
	return c.urgent
}
