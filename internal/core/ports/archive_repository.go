package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/archive"
)

// ArchiveRepository defines the persistence contract for archive bundles.
// Bundles are append-only: there is no update operation.
type ArchiveRepository interface {
	// Add persists a new bundle with its snapshot rows.
	Add(ctx context.Context, bundle *archive.Bundle) error

	// GetAll retrieves bundles ordered newest-first, up to limit.
	// A non-positive limit returns all bundles.
	GetAll(ctx context.Context, limit int) ([]*archive.Bundle, error)

	// GetLatest retrieves the most recent bundle, or nil when none exists.
	GetLatest(ctx context.Context) (*archive.Bundle, error)

	// DeleteAll removes every bundle and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
