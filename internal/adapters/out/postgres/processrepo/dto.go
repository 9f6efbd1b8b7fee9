// Package processrepo persists process tracking rows.
package processrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"

	"github.com/google/uuid"
)

// RowDTO is the database structure for process rows. The fulfillment id is
// unique: confirmation creates at most one process row per fulfillment row.
type RowDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FulfillmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	OrderID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RowNumber     int
	BoxNumber     string
	Status        string `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for process rows.
func (RowDTO) TableName() string {
	return "process_rows"
}

func fromDomain(row *process.Row) RowDTO {
	return RowDTO{
		ID:            row.ID().Bytes(),
		FulfillmentID: row.FulfillmentID().Bytes(),
		OrderID:       row.OrderID().Bytes(),
		RowNumber:     row.RowNumber(),
		BoxNumber:     row.BoxNumber(),
		Status:        string(row.Status()),
		CreatedAt:     row.CreatedAt(),
		UpdatedAt:     row.UpdatedAt(),
	}
}

func toDomain(dto RowDTO) (*process.Row, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fulfillmentID, err := kernel.UUIDFromBytes(dto.FulfillmentID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return process.RestoreRow(
		id,
		fulfillmentID,
		orderID,
		dto.RowNumber,
		dto.BoxNumber,
		process.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
