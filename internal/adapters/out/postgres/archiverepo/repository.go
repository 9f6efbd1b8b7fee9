package archiverepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/archive"

	"gorm.io/gorm"
)

// GormArchiveRepository implements ArchiveRepository using GORM. Bundles are
// append-only, so there is no aggregate tracking and no update path.
type GormArchiveRepository struct {
	db *gorm.DB
}

// NewGormArchiveRepository creates a new GORM archive repository.
func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{
		db: db,
	}
}

// Add persists the bundle header and all snapshot rows.
func (r *GormArchiveRepository) Add(ctx context.Context, bundle *archive.Bundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}

	header, orders, fulfillments, processes := fromDomain(bundle)

	conn := r.db.WithContext(ctx)
	if err := conn.Create(&header).Error; err != nil {
		return err
	}
	if len(orders) > 0 {
		if err := conn.Create(&orders).Error; err != nil {
			return err
		}
	}
	if len(fulfillments) > 0 {
		if err := conn.Create(&fulfillments).Error; err != nil {
			return err
		}
	}
	if len(processes) > 0 {
		if err := conn.Create(&processes).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetAll retrieves bundles ordered newest-first, up to limit. A non-positive
// limit returns all bundles.
func (r *GormArchiveRepository) GetAll(ctx context.Context, limit int) ([]*archive.Bundle, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var headers []BundleDTO
	if err := query.Find(&headers).Error; err != nil {
		return nil, err
	}

	bundles := make([]*archive.Bundle, 0, len(headers))
	for _, header := range headers {
		bundle, err := r.load(ctx, header)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, bundle)
	}

	return bundles, nil
}

// GetLatest retrieves the most recent bundle, or nil when none exists.
func (r *GormArchiveRepository) GetLatest(ctx context.Context) (*archive.Bundle, error) {
	var header BundleDTO
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&header).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.load(ctx, header)
}

// DeleteAll removes every bundle with its snapshots and reports how many
// bundles were removed.
func (r *GormArchiveRepository) DeleteAll(ctx context.Context) (int, error) {
	conn := r.db.WithContext(ctx)
	if err := conn.Where("1 = 1").Delete(&OrderSnapshotDTO{}).Error; err != nil {
		return 0, err
	}
	if err := conn.Where("1 = 1").Delete(&FulfillmentSnapshotDTO{}).Error; err != nil {
		return 0, err
	}
	if err := conn.Where("1 = 1").Delete(&ProcessSnapshotDTO{}).Error; err != nil {
		return 0, err
	}

	result := conn.Where("1 = 1").Delete(&BundleDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

func (r *GormArchiveRepository) load(ctx context.Context, header BundleDTO) (*archive.Bundle, error) {
	conn := r.db.WithContext(ctx)

	var orders []OrderSnapshotDTO
	if err := conn.Where("bundle_id = ?", header.ID).Order("row_number").Find(&orders).Error; err != nil {
		return nil, err
	}

	var fulfillments []FulfillmentSnapshotDTO
	if err := conn.Where("bundle_id = ?", header.ID).Order("row_number").Find(&fulfillments).Error; err != nil {
		return nil, err
	}

	var processes []ProcessSnapshotDTO
	if err := conn.Where("bundle_id = ?", header.ID).Order("row_number").Find(&processes).Error; err != nil {
		return nil, err
	}

	return toDomain(header, orders, fulfillments, processes)
}
