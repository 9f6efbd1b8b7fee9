package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrderRowsQueryIsNotConstructed = errors.New(
		"GetAllOrderRowsQuery must be created via NewGetAllOrderRowsQuery constructor",
	)
)

// GetAllOrderRowsQuery retrieves the order ledger enriched with catalog data.
// Rows whose substance is missing from the catalog come back with zeroed
// enrichment fields rather than an error.
type GetAllOrderRowsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrderRowsQuery creates a query to retrieve the full order ledger.
func NewGetAllOrderRowsQuery() GetAllOrderRowsQuery {
	return GetAllOrderRowsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrderRowsQueryIsNotConstructed if validation fails.
func (q GetAllOrderRowsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderRowsQueryIsNotConstructed)
}

// GetAllOrderRowsQueryResponse represents one ledger row joined with its
// catalog record. Name, Company, UnitsPerPackLocal, UnitPrice, and ImageURL
// are zero values when the substance is not in the catalog.
type GetAllOrderRowsQueryResponse struct {
	ID                kernel.UUID
	RowNumber         int
	Substance         string
	Name              string
	Company           string
	UnitsPerPackLocal float64
	UnitPrice         decimal.Decimal
	CurrentBalance    float64
	RequestedPacks    float64
	ConfirmedPacks    float64
	FinalBalance      float64
	RequestedUnits    float64
	ConfirmedUnits    float64
	Urgent            bool
	ImageURL          string
}
