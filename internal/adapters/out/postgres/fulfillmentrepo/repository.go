package fulfillmentrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFulfillmentRepository implements FulfillmentRepository using GORM.
type GormFulfillmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFulfillmentRepository creates a new GORM fulfillment repository.
func NewGormFulfillmentRepository(db *gorm.DB, tracker aggregateTracker) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fulfillment row.
func (r *GormFulfillmentRepository) Add(ctx context.Context, aggregate *fulfillment.Row) error {
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

// Update saves an existing fulfillment row. All columns are written, so
// amounts cleared to zero persist.
func (r *GormFulfillmentRepository) Update(ctx context.Context, aggregate *fulfillment.Row) error {
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

// Get retrieves a fulfillment row by ID.
func (r *GormFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Row, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment row", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the fulfillment row referencing the given order row.
func (r *GormFulfillmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*fulfillment.Row, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment row", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every live row ordered by row number.
func (r *GormFulfillmentRepository) GetAll(ctx context.Context) ([]*fulfillment.Row, error) {
	return r.find(ctx, r.db.WithContext(ctx).Order("row_number"))
}

// GetAllUnconfirmed retrieves the rows still awaiting confirmation.
func (r *GormFulfillmentRepository) GetAllUnconfirmed(ctx context.Context) ([]*fulfillment.Row, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("confirmed = ?", false).Order("row_number"))
}

// Delete removes a fulfillment row by ID.
func (r *GormFulfillmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RowDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAll removes every fulfillment row and reports how many were removed.
func (r *GormFulfillmentRepository) DeleteAll(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&RowDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

func (r *GormFulfillmentRepository) find(_ context.Context, query *gorm.DB) ([]*fulfillment.Row, error) {
	var dtos []RowDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]*fulfillment.Row, 0, len(dtos))
	for _, dto := range dtos {
		row, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}
