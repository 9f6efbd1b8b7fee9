package commands

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrUpdateFulfillmentCommandIsNotConstructed = errors.New(
		"UpdateFulfillmentCommand must be created via NewUpdateFulfillmentCommand constructor",
	)
)

// UpdateFulfillmentCommand represents a request to write the user-entered
// final order and bonus quantities of one fulfillment row.
type UpdateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	fulfillmentID kernel.UUID
	finalOrder    float64
	bonus         float64

	guard guard.ConstructorGuard
}

// NewUpdateFulfillmentCommand creates a command to update a fulfillment row's
// amounts.
func NewUpdateFulfillmentCommand(fulfillmentID kernel.UUID, finalOrder, bonus float64) (UpdateFulfillmentCommand, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return UpdateFulfillmentCommand{}, err
	}
	if finalOrder < 0 {
		return UpdateFulfillmentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"finalOrder",
			fmt.Errorf("%v is negative", finalOrder),
		)
	}
	if bonus < 0 {
		return UpdateFulfillmentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"bonus",
			fmt.Errorf("%v is negative", bonus),
		)
	}

	return UpdateFulfillmentCommand{
		fulfillmentID: fulfillmentID,
		finalOrder:    finalOrder,
		bonus:         bonus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateFulfillmentCommandIsNotConstructed if validation fails.
func (c UpdateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFulfillmentCommandIsNotConstructed)
}

// FulfillmentID returns the target row's identifier.
func (c UpdateFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// FinalOrder returns the final order quantity, in packs.
func (c UpdateFulfillmentCommand) FinalOrder() float64 {
	return c.finalOrder
}

// Bonus returns the bonus quantity, in packs.
func (c UpdateFulfillmentCommand) Bonus() float64 {
	return c.bonus
}
