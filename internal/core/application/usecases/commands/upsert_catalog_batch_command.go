package commands

import (
	"errors"

	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrUpsertCatalogBatchCommandIsNotConstructed = errors.New(
		"UpsertCatalogBatchCommand must be created via NewUpsertCatalogBatchCommand constructor",
	)
)

// UpsertCatalogBatchCommand represents a request to merge a batch of candidate
// catalog rows into the master catalog. The same command serves the single-row
// save path (a batch of one) and the bulk import path.
//
// Example:
//
//	cmd, err := NewUpsertCatalogBatchCommand(candidates)
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewUpsertCatalogBatchCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("batch upsert failed: %w", err)
//	}
//	fmt.Printf("created %d, updated %d", result.Summary.Created, result.Summary.Updated)
type UpsertCatalogBatchCommand struct { //nolint:recvcheck //using for validation
	candidates []services.Candidate

	guard guard.ConstructorGuard
}

// NewUpsertCatalogBatchCommand creates a command carrying the candidate rows.
// An empty batch is allowed and produces an empty merge result.
func NewUpsertCatalogBatchCommand(candidates []services.Candidate) (UpsertCatalogBatchCommand, error) {
	return UpsertCatalogBatchCommand{
		candidates: candidates,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertCatalogBatchCommandIsNotConstructed if validation fails.
func (c UpsertCatalogBatchCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCatalogBatchCommandIsNotConstructed)
}

// Candidates returns the candidate rows in input order.
func (c UpsertCatalogBatchCommand) Candidates() []services.Candidate {
	return c.candidates
}
