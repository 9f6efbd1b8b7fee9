package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllFulfillmentQueryHandler retrieves fulfillment rows with order and
// catalog enrichment. Cost fields are recomputed on every read and never
// written back.
type GetAllFulfillmentQueryHandler struct {
	db         *gorm.DB
	calculator services.CostCalculator
}

// NewGetAllFulfillmentQueryHandler creates a handler for fulfillment queries.
func NewGetAllFulfillmentQueryHandler(db *gorm.DB) GetAllFulfillmentQueryHandler {
	return GetAllFulfillmentQueryHandler{
		db:         db,
		calculator: services.NewCostCalculator(),
	}
}

// Handle executes the query to retrieve all fulfillment rows.
// Results are sorted by row number for consistent output.
func (h GetAllFulfillmentQueryHandler) Handle(
	ctx context.Context,
	query GetAllFulfillmentQuery,
) ([]GetAllFulfillmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetAllFulfillmentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.order_id,
			f.row_number,
			COALESCE(o.substance, ''),
			COALESCE(c.name, ''),
			COALESCE(c.company, ''),
			f.final_order,
			f.bonus,
			f.confirmed,
			COALESCE(c.units_per_pack_supplier, 0),
			COALESCE(c.unit_price, 0)
		FROM fulfillment_rows f
		LEFT JOIN order_rows o ON o.id = f.order_id
		LEFT JOIN catalog_records c ON c.substance = o.substance
		ORDER BY f.row_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllFulfillmentQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.RowNumber,
			&resp.Substance,
			&resp.Name,
			&resp.Company,
			&resp.FinalOrder,
			&resp.Bonus,
			&resp.Confirmed,
			&resp.UnitsPerPackSupplier,
			&resp.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		fulfillmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = fulfillmentID

		rowOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = rowOrderID

		breakdown := h.calculator.Calculate(
			resp.FinalOrder,
			resp.Bonus,
			resp.UnitsPerPackSupplier,
			resp.UnitPrice,
		)
		resp.FinalPackageAmount = breakdown.FinalPackageAmount
		resp.FinalUnitAmount = breakdown.FinalUnitAmount
		resp.TotalPrice = breakdown.TotalPrice

		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
