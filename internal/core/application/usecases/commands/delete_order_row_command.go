package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrDeleteOrderRowCommandIsNotConstructed = errors.New(
		"DeleteOrderRowCommand must be created via NewDeleteOrderRowCommand constructor",
	)
)

// DeleteOrderRowCommand represents a request to remove one order ledger row
// together with its downstream fulfillment and process rows.
type DeleteOrderRowCommand struct { //nolint:recvcheck //using for validation
	rowID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderRowCommand creates a command to cascade-delete an order row.
func NewDeleteOrderRowCommand(rowID kernel.UUID) (DeleteOrderRowCommand, error) {
	if err := rowID.Validate(); err != nil {
		return DeleteOrderRowCommand{}, err
	}

	return DeleteOrderRowCommand{
		rowID: rowID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderRowCommandIsNotConstructed if validation fails.
func (c DeleteOrderRowCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderRowCommandIsNotConstructed)
}

// RowID returns the target row's identifier.
func (c DeleteOrderRowCommand) RowID() kernel.UUID {
	return c.rowID
}
