package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrGetAllProcessesQueryIsNotConstructed = errors.New(
		"GetAllProcessesQuery must be created via NewGetAllProcessesQuery constructor",
	)
)

// GetAllProcessesQuery retrieves the delivery-tracking view: process rows
// enriched with substance, name, derived amounts, and the urgency flag of the
// originating order row.
type GetAllProcessesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProcessesQuery creates a query to retrieve all process rows.
func NewGetAllProcessesQuery() GetAllProcessesQuery {
	return GetAllProcessesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProcessesQueryIsNotConstructed if validation fails.
func (q GetAllProcessesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProcessesQueryIsNotConstructed)
}

// GetAllProcessesQueryResponse represents one process row with its
// enrichment. Enrichment fields are zeroed when the upstream rows are gone.
type GetAllProcessesQueryResponse struct {
	ID                 kernel.UUID
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
