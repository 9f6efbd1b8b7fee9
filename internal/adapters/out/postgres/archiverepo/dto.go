// Package archiverepo persists archive bundles and their snapshot rows.
// A bundle spans four tables: the bundle header plus one table per snapshot
// kind, linked by bundle id.
package archiverepo

import (
	"time"

	"pharmacy/internal/core/domain/model/archive"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BundleDTO is the bundle header row.
type BundleDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalCost decimal.Decimal `gorm:"type:numeric"`
	CreatedAt time.Time       `gorm:"index"`
	CreatedBy string
}

// TableName specifies the database table name for bundle headers.
func (BundleDTO) TableName() string {
	return "archive_bundles"
}

// OrderSnapshotDTO is one archived order row.
type OrderSnapshotDTO struct {
	ID                uint      `gorm:"primaryKey"`
	BundleID          uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID           uuid.UUID `gorm:"type:uuid"`
	RowNumber         int
	Substance         string
	Name              string
	Company           string
	UnitsPerPackLocal float64
	UnitPrice         decimal.Decimal `gorm:"type:numeric"`
	CurrentBalance    float64
	RequestedPacks    float64
	ConfirmedPacks    float64
	FinalBalance      float64
	RequestedUnits    float64
	ConfirmedUnits    float64
	Urgent            bool
	ImageID           *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for archived order rows.
func (OrderSnapshotDTO) TableName() string {
	return "archive_order_snapshots"
}

// FulfillmentSnapshotDTO is one archived fulfillment row.
type FulfillmentSnapshotDTO struct {
	ID                   uint      `gorm:"primaryKey"`
	BundleID             uuid.UUID `gorm:"type:uuid;index;not null"`
	FulfillmentID        uuid.UUID `gorm:"type:uuid"`
	OrderID              uuid.UUID `gorm:"type:uuid"`
	RowNumber            int
	Substance            string
	Name                 string
	Company              string
	FinalOrder           float64
	Bonus                float64
	Confirmed            bool
	UnitsPerPackSupplier float64
	FinalPackageAmount   float64
	FinalUnitAmount      float64
	UnitPrice            decimal.Decimal `gorm:"type:numeric"`
	TotalPrice           decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for archived fulfillment rows.
func (FulfillmentSnapshotDTO) TableName() string {
	return "archive_fulfillment_snapshots"
}

// ProcessSnapshotDTO is one archived process row.
type ProcessSnapshotDTO struct {
	ID                 uint      `gorm:"primaryKey"`
	BundleID           uuid.UUID `gorm:"type:uuid;index;not null"`
	ProcessID          uuid.UUID `gorm:"type:uuid"`
	FulfillmentID      uuid.UUID `gorm:"type:uuid"`
	OrderID            uuid.UUID `gorm:"type:uuid"`
	RowNumber          int
	Substance          string
	Name               string
	BoxNumber          string
	Status             string
	FinalPackageAmount float64
	FinalUnitAmount    float64
	Urgent             bool
}

// TableName specifies the database table name for archived process rows.
func (ProcessSnapshotDTO) TableName() string {
	return "archive_process_snapshots"
}

func fromDomain(bundle *archive.Bundle) (BundleDTO, []OrderSnapshotDTO, []FulfillmentSnapshotDTO, []ProcessSnapshotDTO) {
	header := BundleDTO{
		ID:        bundle.ID().Bytes(),
		TotalCost: bundle.TotalCost(),
		CreatedAt: bundle.CreatedAt(),
		CreatedBy: bundle.CreatedBy(),
	}

	orders := make([]OrderSnapshotDTO, 0, len(bundle.Orders()))
	for _, s := range bundle.Orders() {
		var imageID *uuid.UUID
		if s.ImageID != nil {
			raw := s.ImageID.Bytes()
			imageID = &raw
		}

		orders = append(orders, OrderSnapshotDTO{
			BundleID:          header.ID,
			OrderID:           s.OrderID.Bytes(),
			RowNumber:         s.RowNumber,
			Substance:         s.Substance,
			Name:              s.Name,
			Company:           s.Company,
			UnitsPerPackLocal: s.UnitsPerPackLocal,
			UnitPrice:         s.UnitPrice,
			CurrentBalance:    s.CurrentBalance,
			RequestedPacks:    s.RequestedPacks,
			ConfirmedPacks:    s.ConfirmedPacks,
			FinalBalance:      s.FinalBalance,
			RequestedUnits:    s.RequestedUnits,
			ConfirmedUnits:    s.ConfirmedUnits,
			Urgent:            s.Urgent,
			ImageID:           imageID,
		})
	}

	fulfillments := make([]FulfillmentSnapshotDTO, 0, len(bundle.Fulfillments()))
	for _, s := range bundle.Fulfillments() {
		fulfillments = append(fulfillments, FulfillmentSnapshotDTO{
			BundleID:             header.ID,
			FulfillmentID:        s.FulfillmentID.Bytes(),
			OrderID:              s.OrderID.Bytes(),
			RowNumber:            s.RowNumber,
			Substance:            s.Substance,
			Name:                 s.Name,
			Company:              s.Company,
			FinalOrder:           s.FinalOrder,
			Bonus:                s.Bonus,
			Confirmed:            s.Confirmed,
			UnitsPerPackSupplier: s.UnitsPerPackSupplier,
			FinalPackageAmount:   s.FinalPackageAmount,
			FinalUnitAmount:      s.FinalUnitAmount,
			UnitPrice:            s.UnitPrice,
			TotalPrice:           s.TotalPrice,
		})
	}

	processes := make([]ProcessSnapshotDTO, 0, len(bundle.Processes()))
	for _, s := range bundle.Processes() {
		processes = append(processes, ProcessSnapshotDTO{
			BundleID:           header.ID,
			ProcessID:          s.ProcessID.Bytes(),
			FulfillmentID:      s.FulfillmentID.Bytes(),
			OrderID:            s.OrderID.Bytes(),
			RowNumber:          s.RowNumber,
			Substance:          s.Substance,
			Name:               s.Name,
			BoxNumber:          s.BoxNumber,
			Status:             string(s.Status),
			FinalPackageAmount: s.FinalPackageAmount,
			FinalUnitAmount:    s.FinalUnitAmount,
			Urgent:             s.Urgent,
		})
	}

	return header, orders, fulfillments, processes
}

func toDomain(
	header BundleDTO,
	orderDTOs []OrderSnapshotDTO,
	fulfillmentDTOs []FulfillmentSnapshotDTO,
	processDTOs []ProcessSnapshotDTO,
) (*archive.Bundle, error) {
	id, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return nil, err
	}

	orders := make([]archive.OrderSnapshot, 0, len(orderDTOs))
	for _, dto := range orderDTOs {
		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		var imageID *kernel.UUID
		if dto.ImageID != nil {
			imgID, imgErr := kernel.UUIDFromBytes((*dto.ImageID)[:])
			if imgErr != nil {
				return nil, imgErr
			}
			imageID = &imgID
		}

		orders = append(orders, archive.OrderSnapshot{
			OrderID:           orderID,
			RowNumber:         dto.RowNumber,
			Substance:         dto.Substance,
			Name:              dto.Name,
			Company:           dto.Company,
			UnitsPerPackLocal: dto.UnitsPerPackLocal,
			UnitPrice:         dto.UnitPrice,
			CurrentBalance:    dto.CurrentBalance,
			RequestedPacks:    dto.RequestedPacks,
			ConfirmedPacks:    dto.ConfirmedPacks,
			FinalBalance:      dto.FinalBalance,
			RequestedUnits:    dto.RequestedUnits,
			ConfirmedUnits:    dto.ConfirmedUnits,
			Urgent:            dto.Urgent,
			ImageID:           imageID,
		})
	}

	fulfillments := make([]archive.FulfillmentSnapshot, 0, len(fulfillmentDTOs))
	for _, dto := range fulfillmentDTOs {
		fulfillmentID, idErr := kernel.UUIDFromBytes(dto.FulfillmentID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		fulfillments = append(fulfillments, archive.FulfillmentSnapshot{
			FulfillmentID:        fulfillmentID,
			OrderID:              orderID,
			RowNumber:            dto.RowNumber,
			Substance:            dto.Substance,
			Name:                 dto.Name,
			Company:              dto.Company,
			FinalOrder:           dto.FinalOrder,
			Bonus:                dto.Bonus,
			Confirmed:            dto.Confirmed,
			UnitsPerPackSupplier: dto.UnitsPerPackSupplier,
			FinalPackageAmount:   dto.FinalPackageAmount,
			FinalUnitAmount:      dto.FinalUnitAmount,
			UnitPrice:            dto.UnitPrice,
			TotalPrice:           dto.TotalPrice,
		})
	}

	processes := make([]archive.ProcessSnapshot, 0, len(processDTOs))
	for _, dto := range processDTOs {
		processID, idErr := kernel.UUIDFromBytes(dto.ProcessID[:])
		if idErr != nil {
			return nil, idErr
		}

		fulfillmentID, idErr := kernel.UUIDFromBytes(dto.FulfillmentID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		processes = append(processes, archive.ProcessSnapshot{
			ProcessID:          processID,
			FulfillmentID:      fulfillmentID,
			OrderID:            orderID,
			RowNumber:          dto.RowNumber,
			Substance:          dto.Substance,
			Name:               dto.Name,
			BoxNumber:          dto.BoxNumber,
			Status:             process.Status(dto.Status),
			FinalPackageAmount: dto.FinalPackageAmount,
			FinalUnitAmount:    dto.FinalUnitAmount,
			Urgent:             dto.Urgent,
		})
	}

	return archive.RestoreBundle(id, orders, fulfillments, processes, header.TotalCost, header.CreatedAt, header.CreatedBy)
}
