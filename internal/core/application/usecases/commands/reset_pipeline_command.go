package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrResetPipelineCommandIsNotConstructed = errors.New(
		"ResetPipelineCommand must be created via NewResetPipelineCommand constructor",
	)
)

// ResetPipelineCommand represents a request to wipe every pipeline table,
// including the archive and stored blobs. This is the destructive management
// operation behind the admin reset; there is no undo.
type ResetPipelineCommand struct {
	guard guard.ConstructorGuard
}

// NewResetPipelineCommand creates a command to reset the whole pipeline.
func NewResetPipelineCommand() ResetPipelineCommand {
	return ResetPipelineCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetPipelineCommandIsNotConstructed if validation fails.
func (c ResetPipelineCommand) Validate() error {
	return c.guard.Validate(ErrResetPipelineCommandIsNotConstructed)
}
