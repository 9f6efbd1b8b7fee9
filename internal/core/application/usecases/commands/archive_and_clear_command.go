package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrArchiveAndClearCommandIsNotConstructed = errors.New(
		"ArchiveAndClearCommand must be created via NewArchiveAndClearCommand constructor",
	)
)

// ArchiveAndClearCommand represents a request to snapshot the current
// pipeline into an archive bundle and clear the archived rows from the live
// stages.
type ArchiveAndClearCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveAndClearCommand creates a command to archive the pipeline.
func NewArchiveAndClearCommand() ArchiveAndClearCommand {
	return ArchiveAndClearCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveAndClearCommandIsNotConstructed if validation fails.
func (c ArchiveAndClearCommand) Validate() error {
	return c.guard.Validate(ErrArchiveAndClearCommandIsNotConstructed)
}
