package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllCatalogQueryIsNotConstructed = errors.New(
		"GetAllCatalogQuery must be created via NewGetAllCatalogQuery constructor",
	)
)

// GetAllCatalogQuery retrieves every catalog record ordered by substance.
//
// Example:
//
//	query := NewGetAllCatalogQuery()
//	handler := NewGetAllCatalogQueryHandler(db, blobStore)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get catalog: %w", err)
//	}
//
//	fmt.Printf("Catalog holds %d substances\n", len(records))
type GetAllCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCatalogQuery creates a query to retrieve the full catalog.
func NewGetAllCatalogQuery() GetAllCatalogQuery {
	return GetAllCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCatalogQueryIsNotConstructed if validation fails.
func (q GetAllCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCatalogQueryIsNotConstructed)
}

// GetAllCatalogQueryResponse represents one catalog record on the read side.
// ImageURL is resolved from the blob reference and is empty when the record
// has no image.
type GetAllCatalogQueryResponse struct {
	ID                   kernel.UUID
	Substance            string
	Name                 string
	Company              string
	UnitsPerPackLocal    float64
	UnitsPerPackSupplier float64
	UnitPrice            decimal.Decimal
	ImageURL             string
}
