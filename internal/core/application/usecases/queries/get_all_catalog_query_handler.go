package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCatalogQueryHandler retrieves catalog records from the database and
// resolves image references to URLs through the blob store.
type GetAllCatalogQueryHandler struct {
	db        *gorm.DB
	blobStore ports.BlobStore
}

// NewGetAllCatalogQueryHandler creates a handler for catalog queries.
func NewGetAllCatalogQueryHandler(db *gorm.DB, blobStore ports.BlobStore) GetAllCatalogQueryHandler {
	return GetAllCatalogQueryHandler{db: db, blobStore: blobStore}
}

// Handle executes the query to retrieve all catalog records.
// Results are sorted by substance for consistent output.
func (h GetAllCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetAllCatalogQuery,
) ([]GetAllCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetAllCatalogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			substance,
			name,
			company,
			units_per_pack_local,
			units_per_pack_supplier,
			unit_price,
			image_id
		FROM catalog_records
		ORDER BY substance
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllCatalogQueryResponse
		var id uuid.UUID
		var imageID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Substance,
			&resp.Name,
			&resp.Company,
			&resp.UnitsPerPackLocal,
			&resp.UnitsPerPackSupplier,
			&resp.UnitPrice,
			&imageID,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID

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

		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
