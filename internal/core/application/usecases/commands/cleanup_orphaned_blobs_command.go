package commands

import (
	"errors"
	"time"

	"pharmacy/internal/pkg/guard"
)

var (
	ErrCleanupOrphanedBlobsCommandIsNotConstructed = errors.New(
		"CleanupOrphanedBlobsCommand must be created via NewCleanupOrphanedBlobsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must not be zero")
)

// CleanupOrphanedBlobsCommand represents a request to delete blobs that no
// catalog record references. Only blobs stored before the cutoff are
// considered, so an upload that has not been attached to a record yet is not
// reclaimed from under the uploader.
type CleanupOrphanedBlobsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCleanupOrphanedBlobsCommand creates a command to reclaim orphaned blobs
// stored before the cutoff.
func NewCleanupOrphanedBlobsCommand(cutoff time.Time) (CleanupOrphanedBlobsCommand, error) {
	if cutoff.IsZero() {
		return CleanupOrphanedBlobsCommand{}, ErrCutoffIsRequired
	}

	return CleanupOrphanedBlobsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCleanupOrphanedBlobsCommandIsNotConstructed if validation fails.
func (c CleanupOrphanedBlobsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupOrphanedBlobsCommandIsNotConstructed)
}

// Cutoff returns the point in time before which unreferenced blobs are
// eligible for deletion.
func (c CleanupOrphanedBlobsCommand) Cutoff() time.Time {
	return c.cutoff
}
