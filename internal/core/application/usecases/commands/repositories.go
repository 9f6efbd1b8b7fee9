// Package commands contains business operations that modify pipeline state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderRowRepoFactory provides access to the order row repository within a transaction.
	OrderRowRepoFactory interface {
		OrderRowRepository() ports.OrderRowRepository
	}

	// FulfillmentRepoFactory provides access to the fulfillment repository within a transaction.
	FulfillmentRepoFactory interface {
		FulfillmentRepository() ports.FulfillmentRepository
	}

	// ProcessRepoFactory provides access to the process repository within a transaction.
	ProcessRepoFactory interface {
		ProcessRepository() ports.ProcessRepository
	}

	// ArchiveRepoFactory provides access to the archive repository within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for operations touching order rows and
	// the catalog they are enriched from.
	OrderUoW interface {
		TxManager
		OrderRowRepoFactory
		CatalogRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions for fulfillment-only operations.
	FulfillmentUoW interface {
		TxManager
		FulfillmentRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ProcessUoW manages transactions for process-only operations.
	ProcessUoW interface {
		TxManager
		ProcessRepoFactory
	}

	// ProcessUoWFactory creates new process unit of work instances.
	ProcessUoWFactory interface {
		Create() ProcessUoW
	}

	// PipelineUoW manages transactions spanning the three live stages.
	// Used by commands that move rows between stages or cascade across them.
	PipelineUoW interface {
		TxManager
		OrderRowRepoFactory
		FulfillmentRepoFactory
		ProcessRepoFactory
	}

	// PipelineUoWFactory creates new pipeline unit of work instances.
	PipelineUoWFactory interface {
		Create() PipelineUoW
	}

	// ArchiveUoW manages transactions across every pipeline table.
	// Used for archive-and-clear and full resets, where snapshots and
	// deletions must land in the same transaction.
	ArchiveUoW interface {
		TxManager
		CatalogRepoFactory
		OrderRowRepoFactory
		FulfillmentRepoFactory
		ProcessRepoFactory
		ArchiveRepoFactory
	}

	// ArchiveUoWFactory creates new archive unit of work instances.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}
)
