package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetLatestArchiveBundleQueryIsNotConstructed = errors.New(
		"GetLatestArchiveBundleQuery must be created via NewGetLatestArchiveBundleQuery constructor",
	)
)

// GetLatestArchiveBundleQuery retrieves the most recent archive bundle with
// all its snapshot rows. The handler returns nil when nothing has been
// archived yet.
type GetLatestArchiveBundleQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLatestArchiveBundleQuery creates a query for the newest bundle.
func NewGetLatestArchiveBundleQuery() GetLatestArchiveBundleQuery {
	return GetLatestArchiveBundleQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLatestArchiveBundleQueryIsNotConstructed if validation fails.
func (q GetLatestArchiveBundleQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestArchiveBundleQueryIsNotConstructed)
}

// ArchivedOrderRow is one archived ledger row as stored in the bundle.
type ArchivedOrderRow struct {
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
}

// ArchivedFulfillmentRow is one archived fulfillment row with its frozen cost
// fields.
type ArchivedFulfillmentRow struct {
	FulfillmentID      kernel.UUID
	OrderID            kernel.UUID
	RowNumber          int
	Substance          string
	Name               string
	Company            string
	FinalOrder         float64
	Bonus              float64
	Confirmed          bool
	FinalPackageAmount float64
	FinalUnitAmount    float64
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
}

// ArchivedProcessRow is one archived process row.
type ArchivedProcessRow struct {
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

// GetLatestArchiveBundleQueryResponse is the newest bundle with its snapshot
// rows. The snapshots are served exactly as frozen at archival time; nothing
// is recomputed.
type GetLatestArchiveBundleQueryResponse struct {
	ID           kernel.UUID
	TotalCost    decimal.Decimal
	CreatedAt    time.Time
	CreatedBy    string
	Orders       []ArchivedOrderRow
	Fulfillments []ArchivedFulfillmentRow
	Processes    []ArchivedProcessRow
}
