package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLatestArchiveBundleQueryHandler retrieves the newest bundle header and
// its snapshot rows. Returns nil without error when the archive is empty.
type GetLatestArchiveBundleQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestArchiveBundleQueryHandler creates a handler for the
// latest-bundle query.
func NewGetLatestArchiveBundleQueryHandler(db *gorm.DB) GetLatestArchiveBundleQueryHandler {
	return GetLatestArchiveBundleQueryHandler{db: db}
}

// Handle executes the query to retrieve the newest archive bundle.
func (h GetLatestArchiveBundleQueryHandler) Handle(
	ctx context.Context,
	query GetLatestArchiveBundleQuery,
) (*GetLatestArchiveBundleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response GetLatestArchiveBundleQueryResponse
	var bundleID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, total_cost, created_at, created_by
		FROM archive_bundles
		ORDER BY created_at DESC
		LIMIT 1
	`).Row()

	err := row.Scan(&bundleID, &response.TotalCost, &response.CreatedAt, &response.CreatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(bundleID[:])
	if err != nil {
		return nil, err
	}
	response.ID = id

	if response.Orders, err = h.loadOrders(ctx, bundleID); err != nil {
		return nil, err
	}
	if response.Fulfillments, err = h.loadFulfillments(ctx, bundleID); err != nil {
		return nil, err
	}
	if response.Processes, err = h.loadProcesses(ctx, bundleID); err != nil {
		return nil, err
	}

	return &response, nil
}

func (h GetLatestArchiveBundleQueryHandler) loadOrders(ctx context.Context, bundleID uuid.UUID) ([]ArchivedOrderRow, error) {
	results := make([]ArchivedOrderRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			row_number,
			substance,
			name,
			company,
			units_per_pack_local,
			unit_price,
			current_balance,
			requested_packs,
			confirmed_packs,
			final_balance,
			requested_units,
			confirmed_units,
			urgent
		FROM archive_order_snapshots
		WHERE bundle_id = ?
		ORDER BY row_number
	`, bundleID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ArchivedOrderRow
		var orderID uuid.UUID

		err = rows.Scan(
			&orderID,
			&resp.RowNumber,
			&resp.Substance,
			&resp.Name,
			&resp.Company,
			&resp.UnitsPerPackLocal,
			&resp.UnitPrice,
			&resp.CurrentBalance,
			&resp.RequestedPacks,
			&resp.ConfirmedPacks,
			&resp.FinalBalance,
			&resp.RequestedUnits,
			&resp.ConfirmedUnits,
			&resp.Urgent,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = id

		results = append(results, resp)
	}

	return results, rows.Err()
}

func (h GetLatestArchiveBundleQueryHandler) loadFulfillments(ctx context.Context, bundleID uuid.UUID) ([]ArchivedFulfillmentRow, error) {
	results := make([]ArchivedFulfillmentRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			fulfillment_id,
			order_id,
			row_number,
			substance,
			name,
			company,
			final_order,
			bonus,
			confirmed,
			final_package_amount,
			final_unit_amount,
			unit_price,
			total_price
		FROM archive_fulfillment_snapshots
		WHERE bundle_id = ?
		ORDER BY row_number
	`, bundleID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ArchivedFulfillmentRow
		var fulfillmentID, orderID uuid.UUID

		err = rows.Scan(
			&fulfillmentID,
			&orderID,
			&resp.RowNumber,
			&resp.Substance,
			&resp.Name,
			&resp.Company,
			&resp.FinalOrder,
			&resp.Bonus,
			&resp.Confirmed,
			&resp.FinalPackageAmount,
			&resp.FinalUnitAmount,
			&resp.UnitPrice,
			&resp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		fID, idErr := kernel.UUIDFromBytes(fulfillmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.FulfillmentID = fID

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = oID

		results = append(results, resp)
	}

	return results, rows.Err()
}

func (h GetLatestArchiveBundleQueryHandler) loadProcesses(ctx context.Context, bundleID uuid.UUID) ([]ArchivedProcessRow, error) {
	results := make([]ArchivedProcessRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			process_id,
			fulfillment_id,
			order_id,
			row_number,
			substance,
			name,
			box_number,
			status,
			final_package_amount,
			final_unit_amount,
			urgent
		FROM archive_process_snapshots
		WHERE bundle_id = ?
		ORDER BY row_number
	`, bundleID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ArchivedProcessRow
		var processID, fulfillmentID, orderID uuid.UUID
		var status string

		err = rows.Scan(
			&processID,
			&fulfillmentID,
			&orderID,
			&resp.RowNumber,
			&resp.Substance,
			&resp.Name,
			&resp.BoxNumber,
			&status,
			&resp.FinalPackageAmount,
			&resp.FinalUnitAmount,
			&resp.Urgent,
		)
		if err != nil {
			return nil, err
		}

		pID, idErr := kernel.UUIDFromBytes(processID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ProcessID = pID

		fID, idErr := kernel.UUIDFromBytes(fulfillmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.FulfillmentID = fID

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = oID

		resp.Status = process.Status(status)

		results = append(results, resp)
	}

	return results, rows.Err()
}
