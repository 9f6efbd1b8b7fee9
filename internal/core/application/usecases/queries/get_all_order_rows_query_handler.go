package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrderRowsQueryHandler retrieves ledger rows joined with catalog
// records. The join is by substance; a missing catalog record yields zeroed
// enrichment instead of dropping the row.
type GetAllOrderRowsQueryHandler struct {
	db        *gorm.DB
	blobStore ports.BlobStore
}

// NewGetAllOrderRowsQueryHandler creates a handler for ledger queries.
func NewGetAllOrderRowsQueryHandler(db *gorm.DB, blobStore ports.BlobStore) GetAllOrderRowsQueryHandler {
	return GetAllOrderRowsQueryHandler{db: db, blobStore: blobStore}
}

// Handle executes the query to retrieve all ledger rows.
// Results are sorted by row number, so urgent rows come first.
func (h GetAllOrderRowsQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderRowsQuery,
) ([]GetAllOrderRowsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetAllOrderRowsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.row_number,
			o.substance,
			COALESCE(c.name, ''),
			COALESCE(c.company, ''),
			COALESCE(c.units_per_pack_local, 0),
			COALESCE(c.unit_price, 0),
			o.current_balance,
			o.requested_packs,
			o.confirmed_packs,
			o.final_balance,
			o.requested_units,
			o.confirmed_units,
			o.urgent,
			c.image_id
		FROM order_rows o
		LEFT JOIN catalog_records c ON c.substance = o.substance
		ORDER BY o.row_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrderRowsQueryResponse
		var id uuid.UUID
		var imageID uuid.NullUUID

		err = rows.Scan(
			&id,
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
			&imageID,
		)
		if err != nil {
			return nil, err
		}

		rowID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = rowID

		if imageID.Valid {
			blobID, blobErr := kernel.UUIDFromBytes(imageID.UUID[:])
			if blobErr != nil {
				return nil, blobErr
			}
			url, urlErr := h.blobStore.GetURL(ctx, blobID)
			if urlErr != nil {
				return nil, urlErr
			}
			resp.ImageURL = url
		}

		results = append(results, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
