package commands

import (
	"errors"
	"strings"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrSaveOrderRowCommandIsNotConstructed = errors.New(
		"SaveOrderRowCommand must be created via NewSaveOrderRowCommand constructor",
	)
	ErrRowNumberIsInvalid = errors.New("row number must be greater than 0")
	ErrSubstanceIsRequired = errors.New("substance is required")
)

// SaveOrderRowCommand represents a create-or-replace write to one position of
// the order ledger. When the row number is vacant a new row is created; when
// it is occupied the existing row's fields are replaced in place.
type SaveOrderRowCommand struct { //nolint:recvcheck //using for validation
	rowNumber      int
	substance      string
	currentBalance float64
	requestedPacks float64
	confirmedPacks float64
	urgent         bool

	guard guard.ConstructorGuard
}

// NewSaveOrderRowCommand creates a command to save an order ledger row.
// Validates that the row number is positive and the substance is not empty
// after trimming.
func NewSaveOrderRowCommand(
	rowNumber int,
	substance string,
	currentBalance, requestedPacks, confirmedPacks float64,
	urgent bool,
) (SaveOrderRowCommand, error) {
	cmd := SaveOrderRowCommand{
		currentBalance: currentBalance,
		requestedPacks: requestedPacks,
		confirmedPacks: confirmedPacks,
		urgent:         urgent,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRowNumber(rowNumber),
		cmd.setSubstance(substance),
	); err != nil {
		return SaveOrderRowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveOrderRowCommandIsNotConstructed if validation fails.
func (c SaveOrderRowCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderRowCommandIsNotConstructed)
}

// RowNumber returns the ledger position to write.
func (c SaveOrderRowCommand) RowNumber() int {
	return c.rowNumber
}

// Substance returns the trimmed substance key.
func (c SaveOrderRowCommand) Substance() string {
	return c.substance
}

// CurrentBalance returns the stock on hand, in packs.
func (c SaveOrderRowCommand) CurrentBalance() float64 {
	return c.currentBalance
}

// RequestedPacks returns the requested quantity, in packs.
func (c SaveOrderRowCommand) RequestedPacks() float64 {
	return c.requestedPacks
}

// ConfirmedPacks returns the confirmed quantity, in packs.
func (c SaveOrderRowCommand) ConfirmedPacks() float64 {
	return c.confirmedPacks
}

// Urgent returns the urgency flag.
func (c SaveOrderRowCommand) Urgent() bool {
	return c.urgent
}

func (c *SaveOrderRowCommand) setRowNumber(rowNumber int) error {
	if rowNumber <= 0 {
		return ErrRowNumberIsInvalid
	}

	c.rowNumber = rowNumber
	return nil
}

func (c *SaveOrderRowCommand) setSubstance(substance string) error {
	trimmed := strings.TrimSpace(substance)
	if trimmed == "" {
		return ErrSubstanceIsRequired
	}

	c.substance = trimmed
	return nil
}
