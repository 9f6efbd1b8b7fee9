package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/archive"
	"pharmacy/internal/core/domain/model/catalog"
	"pharmacy/internal/core/domain/model/fulfillment"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/orderrow"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPipelineIsEmpty is returned when archival is requested with no process
// rows to move.
var ErrPipelineIsEmpty = errors.New("no process data to move")

// ArchiveAndClearResponse reports the result of an archival run.
type ArchiveAndClearResponse struct {
	BundleID   kernel.UUID
	MovedCount int
}

// ArchiveAndClearCommandHandler snapshots the pipeline into an immutable
// archive bundle and deletes the archived rows from the live stages. The
// bundle insert and the deletions share one transaction: either the bundle
// exists and the stages are cleared, or nothing happened.
//
// Snapshots are fully denormalized at archival time. The catalog is free to
// change or lose records afterwards; the bundle stays readable on its own. A
// process row whose fulfillment, order, or catalog data cannot be resolved is
// still archived, with the unresolvable enrichment left at its zero value.
type ArchiveAndClearCommandHandler struct {
	uowFactory    ArchiveUoWFactory
	actorResolver ports.ActorResolver
}

// NewArchiveAndClearCommandHandler creates a handler for pipeline archival.
// Requires an ArchiveUoWFactory spanning every pipeline table and an
// ActorResolver to stamp the bundle's creator.
func NewArchiveAndClearCommandHandler(
	uowFactory ArchiveUoWFactory,
	actorResolver ports.ActorResolver,
) ArchiveAndClearCommandHandler {
	return ArchiveAndClearCommandHandler{
		uowFactory:    uowFactory,
		actorResolver: actorResolver,
	}
}

// Handle processes the archival run.
// Returns ErrPipelineIsEmpty when there are no process rows, leaving every
// stage untouched.
func (h ArchiveAndClearCommandHandler) Handle(
	ctx context.Context,
	cmd ArchiveAndClearCommand,
) (ArchiveAndClearResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ArchiveAndClearResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ArchiveAndClearResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	processRepo := uow.ProcessRepository()
	fulfillmentRepo := uow.FulfillmentRepository()
	orderRepo := uow.OrderRowRepository()
	catalogRepo := uow.CatalogRepository()

	processes, err := processRepo.GetAll(ctx)
	if err != nil {
		return ArchiveAndClearResponse{}, err
	}
	if len(processes) == 0 {
		return ArchiveAndClearResponse{}, ErrPipelineIsEmpty
	}

	records, err := catalogRepo.GetAll(ctx)
	if err != nil {
		return ArchiveAndClearResponse{}, err
	}
	recordsBySubstance := make(map[string]*catalog.Record, len(records))
	for _, record := range records {
		recordsBySubstance[record.Substance()] = record
	}

	calc := services.NewCostCalculator()
	totalCost := decimal.Zero

	var (
		orderSnapshots       []archive.OrderSnapshot
		fulfillmentSnapshots []archive.FulfillmentSnapshot
		processSnapshots     []archive.ProcessSnapshot
	)
	seenOrders := make(map[kernel.UUID]bool)
	seenFulfillments := make(map[kernel.UUID]bool)

	for _, processRow := range processes {
		fulfillmentRow, err := fulfillmentRepo.Get(ctx, processRow.FulfillmentID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return ArchiveAndClearResponse{}, err
		}

		orderRow, err := orderRepo.Get(ctx, processRow.OrderID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return ArchiveAndClearResponse{}, err
		}

		var record *catalog.Record
		if orderRow != nil {
			record = recordsBySubstance[orderRow.Substance()]
		}

		breakdown := services.CostBreakdown{}
		if fulfillmentRow != nil {
			supplierFactor := 0.0
			unitPrice := decimal.Zero
			if record != nil {
				supplierFactor = record.UnitsPerPackSupplier()
				unitPrice = record.UnitPrice()
			}
			breakdown = calc.Calculate(fulfillmentRow.FinalOrder(), fulfillmentRow.Bonus(), supplierFactor, unitPrice)
		}

		processSnapshots = append(processSnapshots, newProcessSnapshot(processRow, orderRow, record, breakdown))

		if orderRow != nil && !seenOrders[orderRow.ID()] {
			seenOrders[orderRow.ID()] = true
			orderSnapshots = append(orderSnapshots, newOrderSnapshot(orderRow, record))
		}

		if fulfillmentRow != nil && !seenFulfillments[fulfillmentRow.ID()] {
			seenFulfillments[fulfillmentRow.ID()] = true
			fulfillmentSnapshots = append(fulfillmentSnapshots, newFulfillmentSnapshot(fulfillmentRow, orderRow, record, breakdown))
			totalCost = totalCost.Add(breakdown.TotalPrice)
		}
	}

	bundle, err := archive.NewBundle(
		kernel.NewUUID(),
		orderSnapshots,
		fulfillmentSnapshots,
		processSnapshots,
		totalCost,
		h.actorResolver.CurrentActor(ctx),
	)
	if err != nil {
		return ArchiveAndClearResponse{}, err
	}

	if err = uow.ArchiveRepository().Add(ctx, bundle); err != nil {
		return ArchiveAndClearResponse{}, err
	}

	// Clear leaf to root so a failed deletion can never strand a child row.
	for _, processRow := range processes {
		if err = processRepo.Delete(ctx, processRow.ID()); err != nil {
			return ArchiveAndClearResponse{}, err
		}
	}
	for id := range seenFulfillments {
		if err = fulfillmentRepo.Delete(ctx, id); err != nil {
			return ArchiveAndClearResponse{}, err
		}
	}
	for id := range seenOrders {
		if err = orderRepo.Delete(ctx, id); err != nil {
			return ArchiveAndClearResponse{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ArchiveAndClearResponse{}, err
	}

	return ArchiveAndClearResponse{
		BundleID:   bundle.ID(),
		MovedCount: len(processes),
	}, nil
}

func newOrderSnapshot(orderRow *orderrow.Row, record *catalog.Record) archive.OrderSnapshot {
	snapshot := archive.OrderSnapshot{
		OrderID:        orderRow.ID(),
		RowNumber:      orderRow.RowNumber(),
		Substance:      orderRow.Substance(),
		CurrentBalance: orderRow.CurrentBalance(),
		RequestedPacks: orderRow.RequestedPacks(),
		ConfirmedPacks: orderRow.ConfirmedPacks(),
		FinalBalance:   orderRow.FinalBalance(),
		RequestedUnits: orderRow.RequestedUnits(),
		ConfirmedUnits: orderRow.ConfirmedUnits(),
		Urgent:         orderRow.Urgent(),
		UnitPrice:      decimal.Zero,
	}

	if record != nil {
		snapshot.Name = record.Name()
		snapshot.Company = record.Company()
		snapshot.UnitsPerPackLocal = record.UnitsPerPackLocal()
		snapshot.UnitPrice = record.UnitPrice()
		snapshot.ImageID = record.ImageID()
	}

	return snapshot
}

func newFulfillmentSnapshot(
	fulfillmentRow *fulfillment.Row,
	orderRow *orderrow.Row,
	record *catalog.Record,
	breakdown services.CostBreakdown,
) archive.FulfillmentSnapshot {
	snapshot := archive.FulfillmentSnapshot{
		FulfillmentID:      fulfillmentRow.ID(),
		OrderID:            fulfillmentRow.OrderID(),
		RowNumber:          fulfillmentRow.RowNumber(),
		FinalOrder:         fulfillmentRow.FinalOrder(),
		Bonus:              fulfillmentRow.Bonus(),
		Confirmed:          fulfillmentRow.Confirmed(),
		FinalPackageAmount: breakdown.FinalPackageAmount,
		FinalUnitAmount:    breakdown.FinalUnitAmount,
		UnitPrice:          decimal.Zero,
		TotalPrice:         breakdown.TotalPrice,
	}

	if orderRow != nil {
		snapshot.Substance = orderRow.Substance()
	}
	if record != nil {
		snapshot.Name = record.Name()
		snapshot.Company = record.Company()
		snapshot.UnitsPerPackSupplier = record.UnitsPerPackSupplier()
		snapshot.UnitPrice = record.UnitPrice()
	}

	return snapshot
}

func newProcessSnapshot(
	processRow *process.Row,
	orderRow *orderrow.Row,
	record *catalog.Record,
	breakdown services.CostBreakdown,
) archive.ProcessSnapshot {
	snapshot := archive.ProcessSnapshot{
		ProcessID:          processRow.ID(),
		FulfillmentID:      processRow.FulfillmentID(),
		OrderID:            processRow.OrderID(),
		RowNumber:          processRow.RowNumber(),
		BoxNumber:          processRow.BoxNumber(),
		Status:             processRow.Status(),
		FinalPackageAmount: breakdown.FinalPackageAmount,
		FinalUnitAmount:    breakdown.FinalUnitAmount,
	}

	if orderRow != nil {
		snapshot.Substance = orderRow.Substance()
		snapshot.Urgent = orderRow.Urgent()
	}
	if record != nil {
		snapshot.Name = record.Name()
	}

	return snapshot
}
