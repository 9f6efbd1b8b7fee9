package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCostReportQueryHandler projects the cost of the current fulfillment
// stage. All figures are derived at read time from fulfillment amounts and
// catalog prices.
type GetCostReportQueryHandler struct {
	db         *gorm.DB
	calculator services.CostCalculator
}

// NewGetCostReportQueryHandler creates a handler for cost report queries.
func NewGetCostReportQueryHandler(db *gorm.DB) GetCostReportQueryHandler {
	return GetCostReportQueryHandler{
		db:         db,
		calculator: services.NewCostCalculator(),
	}
}

// Handle executes the query to build the cost report.
// Rows are sorted by row number; the grand total sums all total prices.
func (h GetCostReportQueryHandler) Handle(
	ctx context.Context,
	query GetCostReportQuery,
) (GetCostReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCostReportQueryResponse{}, err
	}

	response := GetCostReportQueryResponse{
		Rows:       make([]CostReportRow, 0),
		GrandTotal: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.row_number,
			COALESCE(o.substance, ''),
			COALESCE(c.name, ''),
			f.final_order,
			f.bonus,
			COALESCE(c.units_per_pack_supplier, 0),
			COALESCE(c.unit_price, 0)
		FROM fulfillment_rows f
		LEFT JOIN order_rows o ON o.id = f.order_id
		LEFT JOIN catalog_records c ON c.substance = o.substance
		ORDER BY f.row_number
	`).Rows()
	if err != nil {
		return GetCostReportQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row CostReportRow
		var id uuid.UUID
		var unitsPerPackSupplier float64

		err = rows.Scan(
			&id,
			&row.RowNumber,
			&row.Substance,
			&row.Name,
			&row.FinalOrder,
			&row.Bonus,
			&unitsPerPackSupplier,
			&row.UnitPrice,
		)
		if err != nil {
			return GetCostReportQueryResponse{}, err
		}

		fulfillmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCostReportQueryResponse{}, idErr
		}
		row.FulfillmentID = fulfillmentID

		breakdown := h.calculator.Calculate(row.FinalOrder, row.Bonus, unitsPerPackSupplier, row.UnitPrice)
		row.FinalPackageAmount = breakdown.FinalPackageAmount
		row.BonusPercentage = breakdown.BonusPercentage
		row.TotalPrice = breakdown.TotalPrice

		response.GrandTotal = response.GrandTotal.Add(row.TotalPrice)
		response.Rows = append(response.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return GetCostReportQueryResponse{}, err
	}

	return response, nil
}
