package orderrowrepo

import (
	"context"
	"errors"
	"strconv"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRowRepository implements OrderRowRepository using GORM.
type GormOrderRowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRowRepository creates a new GORM order row repository.
func NewGormOrderRowRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRowRepository {
	return &GormOrderRowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order row.
func (r *GormOrderRowRepository) Add(ctx context.Context, aggregate *orderrow.Row) error {
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

// Update saves an existing order row. All columns are written, so quantities
// cleared to zero and a lowered urgency flag persist.
func (r *GormOrderRowRepository) Update(ctx context.Context, aggregate *orderrow.Row) error {
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

// Get retrieves an order row by ID.
func (r *GormOrderRowRepository) Get(ctx context.Context, id kernel.UUID) (*orderrow.Row, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order row", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRowNumber retrieves the live row at the given ledger position.
func (r *GormOrderRowRepository) GetByRowNumber(ctx context.Context, rowNumber int) (*orderrow.Row, error) {
	var dto RowDTO
	if err := r.db.WithContext(ctx).First(&dto, "row_number = ?", rowNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order row", strconv.Itoa(rowNumber))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every live row ordered by row number.
func (r *GormOrderRowRepository) GetAll(ctx context.Context) ([]*orderrow.Row, error) {
	var dtos []RowDTO
	if err := r.db.WithContext(ctx).Order("row_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]*orderrow.Row, 0, len(dtos))
	for _, dto := range dtos {
		row, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Delete removes an order row by ID.
func (r *GormOrderRowRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RowDTO{}, "id = ?", id.Bytes()).Error
}

// DeleteAll removes every order row and reports how many were removed.
func (r *GormOrderRowRepository) DeleteAll(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&RowDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
