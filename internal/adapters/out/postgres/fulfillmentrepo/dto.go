// Package fulfillmentrepo persists supplier-side fulfillment rows.
package fulfillmentrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RowDTO is the database structure for fulfillment rows. The order id is
// unique: each order row gets at most one fulfillment row.
type RowDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	RowNumber  int
	FinalOrder float64
	Bonus      float64
	Confirmed  bool `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for fulfillment rows.
func (RowDTO) TableName() string {
	return "fulfillment_rows"
}

func fromDomain(row *fulfillment.Row) RowDTO {
	return RowDTO{
		ID:         row.ID().Bytes(),
		OrderID:    row.OrderID().Bytes(),
		RowNumber:  row.RowNumber(),
		FinalOrder: row.FinalOrder(),
		Bonus:      row.Bonus(),
		Confirmed:  row.Confirmed(),
		CreatedAt:  row.CreatedAt(),
		UpdatedAt:  row.UpdatedAt(),
	}
}

func toDomain(dto RowDTO) (*fulfillment.Row, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return fulfillment.RestoreRow(
		id,
		orderID,
		dto.RowNumber,
		dto.FinalOrder,
		dto.Bonus,
		dto.Confirmed,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
