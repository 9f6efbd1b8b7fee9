package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrSendToFulfillmentCommandIsNotConstructed = errors.New(
		"SendToFulfillmentCommand must be created via NewSendToFulfillmentCommand constructor",
	)
)

// SendToFulfillmentCommand represents a request to forward the current order
// ledger to the supplier-side fulfillment stage.
type SendToFulfillmentCommand struct {
	guard guard.ConstructorGuard
}

// NewSendToFulfillmentCommand creates a command to forward the order ledger.
func NewSendToFulfillmentCommand() SendToFulfillmentCommand {
	return SendToFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendToFulfillmentCommandIsNotConstructed if validation fails.
func (c SendToFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrSendToFulfillmentCommandIsNotConstructed)
}
