package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCostReportQueryIsNotConstructed = errors.New(
		"GetCostReportQuery must be created via NewGetCostReportQuery constructor",
	)
)

// GetCostReportQuery retrieves the cost projection over the current
// fulfillment stage: per-row derived figures plus a grand total.
//
// Example:
//
//	query := NewGetCostReportQuery()
//	handler := NewGetCostReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cost report: %w", err)
//	}
//
//	fmt.Printf("Projected spend: %s\n", report.GrandTotal)
type GetCostReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCostReportQuery creates a query to retrieve the cost projection.
func NewGetCostReportQuery() GetCostReportQuery {
	return GetCostReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCostReportQueryIsNotConstructed if validation fails.
func (q GetCostReportQuery) Validate() error {
	return q.guard.Validate(ErrGetCostReportQueryIsNotConstructed)
}

// CostReportRow is the cost projection for one fulfillment row.
// BonusPercentage is zero when FinalOrder is not positive.
type CostReportRow struct {
	FulfillmentID      kernel.UUID
	RowNumber          int
	Substance          string
	Name               string
	FinalOrder         float64
	Bonus              float64
	FinalPackageAmount float64
	BonusPercentage    decimal.Decimal
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
}

// GetCostReportQueryResponse is the full projection: per-row figures plus the
// sum of all total prices.
type GetCostReportQueryResponse struct {
	Rows       []CostReportRow
	GrandTotal decimal.Decimal
}
