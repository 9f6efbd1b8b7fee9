// Package orderrowrepo persists order ledger rows, mapping them to and from
// their relational representation.
package orderrowrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"

	"github.com/google/uuid"
)

// RowDTO is the database structure for order ledger rows. The row number is
// unique among live rows, enforced by a deferrable constraint added in
// Migrate: renumbering rewrites every row in one transaction and positions
// collide transiently until the last write, so the check must wait for
// commit. The derived quantity columns are stored alongside the inputs so
// restores never recompute.
type RowDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RowNumber      int       `gorm:"not null"`
	Substance      string    `gorm:"index;not null"`
	CurrentBalance float64
	RequestedPacks float64
	ConfirmedPacks float64
	FinalBalance   float64
	RequestedUnits float64
	ConfirmedUnits float64
	Urgent         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for order ledger rows.
func (RowDTO) TableName() string {
	return "order_rows"
}

func fromDomain(row *orderrow.Row) RowDTO {
	return RowDTO{
		ID:             row.ID().Bytes(),
		RowNumber:      row.RowNumber(),
		Substance:      row.Substance(),
		CurrentBalance: row.CurrentBalance(),
		RequestedPacks: row.RequestedPacks(),
		ConfirmedPacks: row.ConfirmedPacks(),
		FinalBalance:   row.FinalBalance(),
		RequestedUnits: row.RequestedUnits(),
		ConfirmedUnits: row.ConfirmedUnits(),
		Urgent:         row.Urgent(),
		CreatedAt:      row.CreatedAt(),
		UpdatedAt:      row.UpdatedAt(),
	}
}

func toDomain(dto RowDTO) (*orderrow.Row, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return orderrow.RestoreRow(
		id,
		dto.RowNumber,
		dto.Substance,
		dto.CurrentBalance,
		dto.RequestedPacks,
		dto.ConfirmedPacks,
		dto.FinalBalance,
		dto.RequestedUnits,
		dto.ConfirmedUnits,
		dto.Urgent,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
