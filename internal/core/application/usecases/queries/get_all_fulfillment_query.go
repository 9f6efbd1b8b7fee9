package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllFulfillmentQueryIsNotConstructed = errors.New(
		"GetAllFulfillmentQuery must be created via NewGetAllFulfillmentQuery constructor",
	)
)

// GetAllFulfillmentQuery retrieves the supplier-side view: fulfillment rows
// joined with their order rows and catalog records, with cost fields derived
// at read time.
type GetAllFulfillmentQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllFulfillmentQuery creates a query to retrieve all fulfillment rows.
func NewGetAllFulfillmentQuery() GetAllFulfillmentQuery {
	return GetAllFulfillmentQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllFulfillmentQueryIsNotConstructed if validation fails.
func (q GetAllFulfillmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAllFulfillmentQueryIsNotConstructed)
}

// GetAllFulfillmentQueryResponse represents one fulfillment row with its
// enrichment and derived cost fields. When the order row or catalog record is
// gone the enrichment is zeroed, but FinalPackageAmount is still
// finalOrder + bonus.
type GetAllFulfillmentQueryResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	RowNumber            int
	Substance            string
	Name                 string
	Company              string
	FinalOrder           float64
	Bonus                float64
	Confirmed            bool
	UnitsPerPackSupplier float64
	FinalPackageAmount   float64
	FinalUnitAmount      float64
	UnitPrice            decimal.Decimal
	TotalPrice           decimal.Decimal
}
