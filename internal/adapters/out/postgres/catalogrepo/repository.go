package catalogrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog record. A substance collision that slipped past the
// merge classification (for example from a concurrent batch) surfaces the
// unique index violation as a validation error.
func (r *GormCatalogRepository) Add(ctx context.Context, aggregate *catalog.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewValueIsInvalidErrorWithCause("substance", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog record. All columns are written, so fields
// cleared to their zero value persist.
func (r *GormCatalogRepository) Update(ctx context.Context, aggregate *catalog.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog record by ID.
func (r *GormCatalogRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("catalog record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySubstance retrieves the record owning the given substance.
func (r *GormCatalogRepository) GetBySubstance(ctx context.Context, substance string) (*catalog.Record, error) {
	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "substance = ?", substance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("catalog record", substance)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every live catalog record.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]*catalog.Record, error) {
	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).Order("substance").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*catalog.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes a catalog record by ID.
func (r *GormCatalogRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RecordDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAll removes every catalog record and reports how many were removed.
func (r *GormCatalogRepository) DeleteAll(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&RecordDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
