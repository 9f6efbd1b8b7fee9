package archive

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrBundleIsNotConstructed is returned when a Bundle instance was not
	// created through NewBundle or RestoreBundle.
	ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle constructor")
)

// OrderSnapshot is the frozen, fully denormalized copy of an order row at
// archival time, including the catalog enrichment the live read side would
// have produced.
type OrderSnapshot struct {
	OrderID           kernel.UUID
	RowNumber         int
	Substance         string
	Name              string
	Company           string
	UnitsPerPackLocal float64
	UnitPrice         decimal.Decimal
	CurrentBalance    float64
	RequestedPacks    float64
	ConfirmedPacks    float64
	FinalBalance      float64
	RequestedUnits    float64
	ConfirmedUnits    float64
	Urgent            bool
	ImageID           *kernel.UUID
}

// FulfillmentSnapshot is the frozen copy of a fulfillment row with its
// derived cost fields materialized.
type FulfillmentSnapshot struct {
	FulfillmentID        kernel.UUID
	OrderID              kernel.UUID
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
	UnitPrice            decimal.Decimal
	TotalPrice           decimal.Decimal
}

// ProcessSnapshot is the frozen copy of a process row.
type ProcessSnapshot struct {
	ProcessID          kernel.UUID
	FulfillmentID      kernel.UUID
	OrderID            kernel.UUID
	RowNumber          int
	Substance          string
	Name               string
	BoxNumber          string
	Status             process.Status
	FinalPackageAmount float64
	FinalUnitAmount    float64
	Urgent             bool
}

// Bundle is the immutable archival unit. It snapshots the full pipeline state
// at the moment the live rows are cleared, so it stays readable after the
// source rows are gone. Bundles are append-only: they are created once by the
// archival operation and never mutated.
type Bundle struct {
	id           kernel.UUID
	totalCost    decimal.Decimal
	createdAt    time.Time
	createdBy    string
	orders       []OrderSnapshot
	fulfillments []FulfillmentSnapshot
	processes    []ProcessSnapshot

	isConstructed bool
}

// NewBundle creates an archive bundle. At least one process snapshot is
// required; archiving an empty pipeline is rejected before this point, and
// the constructor enforces it again.
func NewBundle(
	id kernel.UUID,
	orders []OrderSnapshot,
	fulfillments []FulfillmentSnapshot,
	processes []ProcessSnapshot,
	totalCost decimal.Decimal,
	createdBy string,
) (*Bundle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(processes) == 0 {
		return nil, errs.NewValueIsRequiredError("processes")
	}
	if totalCost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("totalCost")
	}

	return &Bundle{
		id:            id,
		totalCost:     totalCost,
		createdAt:     time.Now().UTC(),
		createdBy:     createdBy,
		orders:        orders,
		fulfillments:  fulfillments,
		processes:     processes,
		isConstructed: true,
	}, nil
}

// RestoreBundle reconstructs a bundle from persistence.
func RestoreBundle(
	id kernel.UUID,
	orders []OrderSnapshot,
	fulfillments []FulfillmentSnapshot,
	processes []ProcessSnapshot,
	totalCost decimal.Decimal,
	createdAt time.Time,
	createdBy string,
) (*Bundle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Bundle{
		id:            id,
		totalCost:     totalCost,
		createdAt:     createdAt,
		createdBy:     createdBy,
		orders:        orders,
		fulfillments:  fulfillments,
		processes:     processes,
		isConstructed: true,
	}, nil
}

// Validate ensures the bundle was created through a constructor.
func (b *Bundle) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBundleIsNotConstructed
	}
	return nil
}

// ID returns the bundle identifier.
func (b *Bundle) ID() kernel.UUID {
	return b.id
}

// TotalCost returns the summed cost of the archived fulfillment rows.
func (b *Bundle) TotalCost() decimal.Decimal {
	return b.totalCost
}

// CreatedAt returns the archival timestamp.
func (b *Bundle) CreatedAt() time.Time {
	return b.createdAt
}

// CreatedBy returns the actor that triggered the archival.
func (b *Bundle) CreatedBy() string {
	return b.createdBy
}

// Orders returns the archived order snapshots.
func (b *Bundle) Orders() []OrderSnapshot {
	return b.orders
}

// Fulfillments returns the archived fulfillment snapshots.
func (b *Bundle) Fulfillments() []FulfillmentSnapshot {
	return b.fulfillments
}

// Processes returns the archived process snapshots.
func (b *Bundle) Processes() []ProcessSnapshot {
	return b.processes
}
