// Package ports defines the persistence and collaborator contracts between
// the application core and its adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for catalog records.
// Substance uniqueness among live records is a hard invariant: Add must fail
// on a substance collision even when the classification layer missed it
// (for example under concurrent batches).
type CatalogRepository interface {
	// Add persists a new catalog record.
	Add(ctx context.Context, record *catalog.Record) error

	// Update persists changes to an existing catalog record.
	Update(ctx context.Context, record *catalog.Record) error

	// Get retrieves a record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Record, error)

	// GetBySubstance retrieves the record owning the given trimmed substance.
	// Returns an ObjectNotFoundError when no live record owns it.
	GetBySubstance(ctx context.Context, substance string) (*catalog.Record, error)

	// GetAll retrieves every live catalog record.
	GetAll(ctx context.Context) ([]*catalog.Record, error)

	// Delete removes a record by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every live record and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
