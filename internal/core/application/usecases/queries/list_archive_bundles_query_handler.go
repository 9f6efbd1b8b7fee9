package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListArchiveBundlesQueryHandler retrieves bundle summaries with per-kind
// snapshot counts, newest first.
type ListArchiveBundlesQueryHandler struct {
	db *gorm.DB
}

// NewListArchiveBundlesQueryHandler creates a handler for bundle listing.
func NewListArchiveBundlesQueryHandler(db *gorm.DB) ListArchiveBundlesQueryHandler {
	return ListArchiveBundlesQueryHandler{db: db}
}

// Handle executes the query to list archive bundles.
func (h ListArchiveBundlesQueryHandler) Handle(
	ctx context.Context,
	query ListArchiveBundlesQuery,
) ([]ListArchiveBundlesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// LIMIT NULL means no limit in postgres.
	var limit any
	if query.Limit() > 0 {
		limit = query.Limit()
	}

	bundles := make([]ListArchiveBundlesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.total_cost,
			b.created_at,
			b.created_by,
			(SELECT COUNT(*) FROM archive_order_snapshots s WHERE s.bundle_id = b.id),
			(SELECT COUNT(*) FROM archive_fulfillment_snapshots s WHERE s.bundle_id = b.id),
			(SELECT COUNT(*) FROM archive_process_snapshots s WHERE s.bundle_id = b.id)
		FROM archive_bundles b
		ORDER BY b.created_at DESC
		LIMIT ?
	`, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListArchiveBundlesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.TotalCost,
			&resp.CreatedAt,
			&resp.CreatedBy,
			&resp.OrderCount,
			&resp.FulfillmentCount,
			&resp.ProcessCount,
		)
		if err != nil {
			return nil, err
		}

		bundleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bundleID

		bundles = append(bundles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bundles, nil
}
