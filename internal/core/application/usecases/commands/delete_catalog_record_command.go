package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrDeleteCatalogRecordCommandIsNotConstructed = errors.New(
		"DeleteCatalogRecordCommand must be created via NewDeleteCatalogRecordCommand constructor",
	)
)

// DeleteCatalogRecordCommand represents a request to remove one catalog
// record and its attached image blob.
type DeleteCatalogRecordCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCatalogRecordCommand creates a command to delete a catalog record.
func NewDeleteCatalogRecordCommand(recordID kernel.UUID) (DeleteCatalogRecordCommand, error) {
	if err := recordID.Validate(); err != nil {
		return DeleteCatalogRecordCommand{}, err
	}

	return DeleteCatalogRecordCommand{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteCatalogRecordCommandIsNotConstructed if validation fails.
func (c DeleteCatalogRecordCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCatalogRecordCommandIsNotConstructed)
}

// RecordID returns the target record's identifier.
func (c DeleteCatalogRecordCommand) RecordID() kernel.UUID {
	return c.recordID
}
