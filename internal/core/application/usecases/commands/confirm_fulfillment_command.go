package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrConfirmFulfillmentCommandIsNotConstructed = errors.New(
		"ConfirmFulfillmentCommand must be created via NewConfirmFulfillmentCommand constructor",
	)
)

// ConfirmFulfillmentCommand represents a request to confirm every unconfirmed
// fulfillment row and materialize its process row.
type ConfirmFulfillmentCommand struct {
	guard guard.ConstructorGuard
}

// NewConfirmFulfillmentCommand creates a command to confirm the fulfillment
// stage.
func NewConfirmFulfillmentCommand() ConfirmFulfillmentCommand {
	return ConfirmFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmFulfillmentCommandIsNotConstructed if validation fails.
func (c ConfirmFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmFulfillmentCommandIsNotConstructed)
}
