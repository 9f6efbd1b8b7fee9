package processrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProcessRepository implements ProcessRepository using GORM.
type GormProcessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProcessRepository creates a new GORM process repository.
func NewGormProcessRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessRepository {
	return &GormProcessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new process row.
func (r *GormProcessRepository) Add(ctx context.Context, aggregate *process.Row) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing process row. All columns are written, so a box
// number cleared to the empty string persists.
func (r *GormProcessRepository) Update(ctx context.Context, aggregate *process.Row) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RowDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a process row by ID.
func (r *GormProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Row, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process row", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFulfillment retrieves the process row referencing the given
// fulfillment row.
func (r *GormProcessRepository) GetByFulfillment(ctx context.Context, fulfillmentID kernel.UUID) (*process.Row, error) {
	if err := fulfillmentID.Validate(); err != nil {
		return nil, err
	}

	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "fulfillment_id = ?", fulfillmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process row", fulfillmentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every live row ordered by row number.
func (r *GormProcessRepository) GetAll(ctx context.Context) ([]*process.Row, error) {
	var dtos []RowDTO
	if err := r.db.WithContext(ctx).Order("row_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]*process.Row, 0, len(dtos))
	for _, dto := range dtos {
		row, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Delete removes a process row by ID.
func (r *GormProcessRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RowDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAll removes every process row and reports how many were removed.
func (r *GormProcessRepository) DeleteAll(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&RowDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
