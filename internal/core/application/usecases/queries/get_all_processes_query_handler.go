package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllProcessesQueryHandler retrieves process rows joined across the whole
// pipeline: fulfillment amounts, order substance and urgency, catalog naming.
type GetAllProcessesQueryHandler struct {
	db         *gorm.DB
	calculator services.CostCalculator
}

// NewGetAllProcessesQueryHandler creates a handler for process queries.
func NewGetAllProcessesQueryHandler(db *gorm.DB) GetAllProcessesQueryHandler {
	return GetAllProcessesQueryHandler{
		db:         db,
		calculator: services.NewCostCalculator(),
	}
}

// Handle executes the query to retrieve all process rows.
// Results are sorted by row number for consistent output.
func (h GetAllProcessesQueryHandler) Handle(
	ctx context.Context,
	query GetAllProcessesQuery,
) ([]GetAllProcessesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetAllProcessesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.fulfillment_id,
			p.order_id,
			p.row_number,
			COALESCE(o.substance, ''),
			COALESCE(c.name, ''),
			p.box_number,
			p.status,
			COALESCE(f.final_order, 0),
			COALESCE(f.bonus, 0),
			COALESCE(c.units_per_pack_supplier, 0),
			COALESCE(o.urgent, FALSE)
		FROM process_rows p
		LEFT JOIN fulfillment_rows f ON f.id = p.fulfillment_id
		LEFT JOIN order_rows o ON o.id = p.order_id
		LEFT JOIN catalog_records c ON c.substance = o.substance
		ORDER BY p.row_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllProcessesQueryResponse
		var id, fulfillmentID, orderID uuid.UUID
		var status string
		var finalOrder, bonus, unitsPerPackSupplier float64

		err = rows.Scan(
			&id,
			&fulfillmentID,
			&orderID,
			&resp.RowNumber,
			&resp.Substance,
			&resp.Name,
			&resp.BoxNumber,
			&status,
			&finalOrder,
			&bonus,
			&unitsPerPackSupplier,
			&resp.Urgent,
		)
		if err != nil {
			return nil, err
		}

		processID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = processID

		rowFulfillmentID, idErr := kernel.UUIDFromBytes(fulfillmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.FulfillmentID = rowFulfillmentID

		rowOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = rowOrderID

		resp.Status = process.Status(status)

		breakdown := h.calculator.Calculate(finalOrder, bonus, unitsPerPackSupplier, decimal.Zero)
		resp.FinalPackageAmount = breakdown.FinalPackageAmount
		resp.FinalUnitAmount = breakdown.FinalUnitAmount

		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
