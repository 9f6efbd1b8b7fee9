package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
)

// ProcessRepository defines the persistence contract for process rows.
// Each fulfillment row gets at most one process row, created on its first
// confirmation; the confirm operation relies on GetByFulfillment as its
// idempotency guard.
type ProcessRepository interface {
	// Add persists a new process row.
	Add(ctx context.Context, row *process.Row) error

	// Update persists changes to an existing process row.
	Update(ctx context.Context, row *process.Row) error

	// Get retrieves a row by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*process.Row, error)

	// GetByFulfillment retrieves the row referencing the given fulfillment
	// row. Returns an ObjectNotFoundError when none exists.
	GetByFulfillment(ctx context.Context, fulfillmentID kernel.UUID) (*process.Row, error)

	// GetAll retrieves every live row ordered by row number.
	GetAll(ctx context.Context) ([]*process.Row, error)

	// Delete removes a row by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every live row and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
