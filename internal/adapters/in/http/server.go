// Package http exposes the application over a REST API. Handlers translate
// between JSON payloads and command/query objects; all decisions stay in the
// application layer.
package http

import (
	"errors"
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Dependencies carries the command and query handlers the server routes to.
type Dependencies struct {
	UpsertCatalogBatchHandler     commands.UpsertCatalogBatchCommandHandler
	DeleteCatalogRecordHandler    commands.DeleteCatalogRecordCommandHandler
	SaveOrderRowHandler           commands.SaveOrderRowCommandHandler
	SetUrgentHandler              commands.SetUrgentCommandHandler
	DeleteOrderRowHandler         commands.DeleteOrderRowCommandHandler
	SendToFulfillmentHandler      commands.SendToFulfillmentCommandHandler
	UpdateFulfillmentHandler      commands.UpdateFulfillmentCommandHandler
	ConfirmFulfillmentHandler     commands.ConfirmFulfillmentCommandHandler
	UpdateProcessHandler          commands.UpdateProcessCommandHandler
	ArchiveAndClearHandler        commands.ArchiveAndClearCommandHandler
	ResetPipelineHandler          commands.ResetPipelineCommandHandler
	GetAllCatalogHandler          queries.GetAllCatalogQueryHandler
	GetAllOrderRowsHandler        queries.GetAllOrderRowsQueryHandler
	GetAllFulfillmentHandler      queries.GetAllFulfillmentQueryHandler
	GetAllProcessesHandler        queries.GetAllProcessesQueryHandler
	GetCostReportHandler          queries.GetCostReportQueryHandler
	ListArchiveBundlesHandler     queries.ListArchiveBundlesQueryHandler
	GetLatestArchiveBundleHandler queries.GetLatestArchiveBundleQueryHandler
	BlobStore                     ports.BlobStore
}

// Server routes HTTP requests to application use cases.
type Server struct {
	deps Dependencies
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/catalog", s.GetCatalog)
	api.POST("/catalog/batch", s.UpsertCatalogBatch)
	api.DELETE("/catalog/:id", s.DeleteCatalogRecord)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.SaveOrder)
	api.PUT("/orders/:id/urgent", s.SetUrgent)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/send", s.SendToFulfillment)

	api.GET("/fulfillment", s.GetFulfillment)
	api.PUT("/fulfillment/:id", s.UpdateFulfillment)
	api.POST("/fulfillment/confirm", s.ConfirmFulfillment)

	api.GET("/processes", s.GetProcesses)
	api.PUT("/processes/:id", s.UpdateProcess)

	api.GET("/reports/cost", s.GetCostReport)

	api.POST("/archive", s.ArchiveAndClear)
	api.GET("/archive", s.ListArchiveBundles)
	api.GET("/archive/latest", s.GetLatestArchiveBundle)

	api.POST("/management/reset", s.ResetPipeline)

	api.POST("/blobs", s.UploadBlob)
	api.GET("/blobs/:id", s.GetBlob)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// respondError maps application errors onto HTTP statuses: validation
// failures become 400, missing objects 404, everything else 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderRowNotFound),
		errors.Is(err, commands.ErrFulfillmentRowNotFound),
		errors.Is(err, commands.ErrProcessRowNotFound),
		errors.Is(err, commands.ErrCatalogRecordNotFound),
		errors.Is(err, commands.ErrPipelineIsEmpty):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
