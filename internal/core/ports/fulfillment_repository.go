package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
)

// FulfillmentRepository defines the persistence contract for supplier-side
// fulfillment rows. Each order row has at most one fulfillment row; the
// send operation relies on GetByOrder to keep the relation one-to-one.
type FulfillmentRepository interface {
	// Add persists a new fulfillment row.
	Add(ctx context.Context, row *fulfillment.Row) error

	// Update persists changes to an existing fulfillment row.
	Update(ctx context.Context, row *fulfillment.Row) error

	// Get retrieves a row by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Row, error)

	// GetByOrder retrieves the row referencing the given order row.
	// Returns an ObjectNotFoundError when the order has not been forwarded.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*fulfillment.Row, error)

	// GetAll retrieves every live row ordered by row number.
	GetAll(ctx context.Context) ([]*fulfillment.Row, error)

	// GetAllUnconfirmed retrieves the rows still awaiting confirmation.
	GetAllUnconfirmed(ctx context.Context) ([]*fulfillment.Row, error)

	// Delete removes a row by id.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every live row and reports how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}
