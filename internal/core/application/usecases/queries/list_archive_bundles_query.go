package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListArchiveBundlesQueryIsNotConstructed = errors.New(
		"ListArchiveBundlesQuery must be created via NewListArchiveBundlesQuery constructor",
	)
)

// ListArchiveBundlesQuery retrieves archive bundle summaries, newest first.
// A non-positive limit returns all bundles.
type ListArchiveBundlesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListArchiveBundlesQuery creates a query for bundle summaries.
func NewListArchiveBundlesQuery(limit int) ListArchiveBundlesQuery {
	return ListArchiveBundlesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListArchiveBundlesQueryIsNotConstructed if validation fails.
func (q ListArchiveBundlesQuery) Validate() error {
	return q.guard.Validate(ErrListArchiveBundlesQueryIsNotConstructed)
}

// Limit returns the maximum number of bundles to return, zero or negative
// meaning all.
func (q ListArchiveBundlesQuery) Limit() int {
	return q.limit
}

// ListArchiveBundlesQueryResponse is the summary of one archive bundle. The
// snapshot rows themselves are served by the latest-bundle query.
type ListArchiveBundlesQueryResponse struct {
	ID               kernel.UUID
	TotalCost        decimal.Decimal
	CreatedAt        time.Time
	CreatedBy        string
	OrderCount       int
	FulfillmentCount int
	ProcessCount     int
}
