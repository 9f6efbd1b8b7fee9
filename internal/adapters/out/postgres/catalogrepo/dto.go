// Package catalogrepo persists catalog record aggregates, mapping them to and
// from their relational representation.
package catalogrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordDTO is the database structure for catalog records. The substance
// carries a unique index: it is the database-level backstop for the
// uniqueness invariant the merge classification enforces in memory.
type RecordDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Substance            string    `gorm:"uniqueIndex;not null"`
	Name                 string
	Company              string
	UnitsPerPackLocal    float64
	UnitsPerPackSupplier float64
	UnitPrice            decimal.Decimal `gorm:"type:numeric"`
	ImageID              *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for catalog records.
func (RecordDTO) TableName() string {
	return "catalog_records"
}

func fromDomain(record *catalog.Record) RecordDTO {
	var imageID *uuid.UUID
	if id := record.ImageID(); id != nil {
		raw := id.Bytes()
		imageID = &raw
	}

	return RecordDTO{
		ID:                   record.ID().Bytes(),
		Substance:            record.Substance(),
		Name:                 record.Name(),
		Company:              record.Company(),
		UnitsPerPackLocal:    record.UnitsPerPackLocal(),
		UnitsPerPackSupplier: record.UnitsPerPackSupplier(),
		UnitPrice:            record.UnitPrice(),
		ImageID:              imageID,
		CreatedAt:            record.CreatedAt(),
		UpdatedAt:            record.UpdatedAt(),
	}
}

func toDomain(dto RecordDTO) (*catalog.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var imageID *kernel.UUID
	if dto.ImageID != nil {
		imgID, imgErr := kernel.UUIDFromBytes((*dto.ImageID)[:])
		if imgErr != nil {
			return nil, imgErr
		}
		imageID = &imgID
	}

	return catalog.RestoreRecord(
		id,
		dto.Substance,
		dto.Name,
		dto.Company,
		dto.UnitsPerPackLocal,
		dto.UnitsPerPackSupplier,
		dto.UnitPrice,
		imageID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
