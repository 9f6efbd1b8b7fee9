package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
)

// OrderRowRepository defines the persistence contract for order ledger rows.
type OrderRowRepository interface {
	// Add persists a new order row.
	Add(ctx context.Context, row *orderrow.Row) error

	// Update persists changes to an existing order row.
	Update(ctx context.Context, row *orderrow.Row) error

	// Get retrieves a row by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*orderrow.Row, error)

	// GetByRowNumber retrieves the live row at the given position.
	// Returns an ObjectNotFoundError when the position is vacant.
	GetByRowNumber(ctx context.Context, rowNumber int) (*orderrow.Row, error)

	// GetAll retrieves every live row ordered by row number.
	GetAll(ctx context.Context) ([]*orderrow.Row, error)

	// Delete removes a row by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every live row and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
