package cmd

import (
	"context"

	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/adapters/out/postgres/blobrepo"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/ports"

	"gorm.io/gorm"
)

// blobBaseURL is the path prefix under which the HTTP adapter serves blobs.
const blobBaseURL = "/api/v1/blobs/"

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	blobStore     ports.BlobStore
	actorResolver ports.ActorResolver
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		blobStore:     blobrepo.NewGormBlobStore(gormDB, blobBaseURL),
		actorResolver: staticActorResolver{name: "system"},
	}
}

func (c *CompositionRoot) BlobStore() ports.BlobStore {
	return c.blobStore
}

func (c *CompositionRoot) CreateUpsertCatalogBatchCommandHandler() commands.UpsertCatalogBatchCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertCatalogBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCatalogRecordCommandHandler() commands.DeleteCatalogRecordCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCatalogRecordCommandHandler(f, c.blobStore)
}

func (c *CompositionRoot) CreateSaveOrderRowCommandHandler() commands.SaveOrderRowCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveOrderRowCommandHandler(f)
}

func (c *CompositionRoot) CreateSetUrgentCommandHandler() commands.SetUrgentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUrgentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderRowCommandHandler() commands.DeleteOrderRowCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderRowCommandHandler(f)
}

func (c *CompositionRoot) CreateSendToFulfillmentCommandHandler() commands.SendToFulfillmentCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendToFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFulfillmentCommandHandler() commands.UpdateFulfillmentCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmFulfillmentCommandHandler() commands.ConfirmFulfillmentCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProcessCommandHandler() commands.UpdateProcessCommandHandler {
	var f commands.ProcessUoWFactory = FuncProcessUoWFactory(func() commands.ProcessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProcessCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveAndClearCommandHandler() commands.ArchiveAndClearCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveAndClearCommandHandler(f, c.actorResolver)
}

func (c *CompositionRoot) CreateResetPipelineCommandHandler() commands.ResetPipelineCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetPipelineCommandHandler(f, c.blobStore)
}

func (c *CompositionRoot) CreateCleanupOrphanedBlobsCommandHandler() commands.CleanupOrphanedBlobsCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupOrphanedBlobsCommandHandler(f, c.blobStore)
}

func (c *CompositionRoot) CreateGetAllCatalogQueryHandler() queries.GetAllCatalogQueryHandler {
	return queries.NewGetAllCatalogQueryHandler(c.gormDB, c.blobStore)
}

func (c *CompositionRoot) CreateGetAllOrderRowsQueryHandler() queries.GetAllOrderRowsQueryHandler {
	return queries.NewGetAllOrderRowsQueryHandler(c.gormDB, c.blobStore)
}

func (c *CompositionRoot) CreateGetAllFulfillmentQueryHandler() queries.GetAllFulfillmentQueryHandler {
	return queries.NewGetAllFulfillmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProcessesQueryHandler() queries.GetAllProcessesQueryHandler {
	return queries.NewGetAllProcessesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCostReportQueryHandler() queries.GetCostReportQueryHandler {
	return queries.NewGetCostReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListArchiveBundlesQueryHandler() queries.ListArchiveBundlesQueryHandler {
	return queries.NewListArchiveBundlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestArchiveBundleQueryHandler() queries.GetLatestArchiveBundleQueryHandler {
	return queries.NewGetLatestArchiveBundleQueryHandler(c.gormDB)
}

// staticActorResolver names every mutation after a fixed system actor.
// Authentication happens outside this service; swap this adapter when a real
// identity becomes available on the request context.
type staticActorResolver struct {
	name string
}

func (r staticActorResolver) CurrentActor(_ context.Context) string {
	return r.name
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncProcessUoWFactory func() commands.ProcessUoW

func (f FuncProcessUoWFactory) Create() commands.ProcessUoW {
	return f()
}

type FuncPipelineUoWFactory func() commands.PipelineUoW

func (f FuncPipelineUoWFactory) Create() commands.PipelineUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}
