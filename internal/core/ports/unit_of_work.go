package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the pipeline
// stages. Multi-step mutations (bulk upsert, confirm, cascade delete,
// archive-and-clear) run every repository call of one logical operation
// inside a single transaction, so downstream rows can never observe a
// half-cleared upstream stage.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CatalogRepository returns a CatalogRepository bound to the current
	// transaction.
	CatalogRepository() CatalogRepository

	// OrderRowRepository returns an OrderRowRepository bound to the current
	// transaction.
	OrderRowRepository() OrderRowRepository

	// FulfillmentRepository returns a FulfillmentRepository bound to the
	// current transaction.
	FulfillmentRepository() FulfillmentRepository

	// ProcessRepository returns a ProcessRepository bound to the current
	// transaction.
	ProcessRepository() ProcessRepository

	// ArchiveRepository returns an ArchiveRepository bound to the current
	// transaction.
	ArchiveRepository() ArchiveRepository
}
