package http

import (
	"net/http"
	"strconv"
	"time"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ArchiveResult reports one archival run.
type ArchiveResult struct {
	BundleID   string `json:"bundleId"`
	MovedCount int    `json:"movedCount"`
}

// ArchiveBundleSummary is one bundle in the archive listing.
type ArchiveBundleSummary struct {
	ID               string          `json:"id"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	OrderCount       int             `json:"orderCount"`
	FulfillmentCount int             `json:"fulfillmentCount"`
	ProcessCount     int             `json:"processCount"`
}

// ResetResult reports the per-table deletion counts of a pipeline reset.
type ResetResult struct {
	CatalogRecords  int `json:"catalogRecords"`
	OrderRows       int `json:"orderRows"`
	FulfillmentRows int `json:"fulfillmentRows"`
	ProcessRows     int `json:"processRows"`
	ArchiveBundles  int `json:"archiveBundles"`
	Blobs           int `json:"blobs"`
}

// ArchiveAndClear handles POST /api/v1/archive.
func (s *Server) ArchiveAndClear(ctx echo.Context) error {
	cmd := commands.NewArchiveAndClearCommand()

	result, err := s.deps.ArchiveAndClearHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ArchiveResult{
		BundleID:   result.BundleID.String(),
		MovedCount: result.MovedCount,
	})
}

// ListArchiveBundles handles GET /api/v1/archive. The optional limit query
// parameter truncates the listing; omitted or non-positive means all.
func (s *Server) ListArchiveBundles(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query := queries.NewListArchiveBundlesQuery(limit)

	bundles, err := s.deps.ListArchiveBundlesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ArchiveBundleSummary, len(bundles))
	for i, bundle := range bundles {
		response[i] = ArchiveBundleSummary{
			ID:               bundle.ID.String(),
			TotalCost:        bundle.TotalCost,
			CreatedAt:        bundle.CreatedAt,
			CreatedBy:        bundle.CreatedBy,
			OrderCount:       bundle.OrderCount,
			FulfillmentCount: bundle.FulfillmentCount,
			ProcessCount:     bundle.ProcessCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLatestArchiveBundle handles GET /api/v1/archive/latest.
func (s *Server) GetLatestArchiveBundle(ctx echo.Context) error {
	query := queries.NewGetLatestArchiveBundleQuery()

	bundle, err := s.deps.GetLatestArchiveBundleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if bundle == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "No archive bundles exist yet",
		})
	}

	return ctx.JSON(http.StatusOK, bundle)
}

// ResetPipeline handles POST /api/v1/management/reset.
func (s *Server) ResetPipeline(ctx echo.Context) error {
	cmd := commands.NewResetPipelineCommand()

	result, err := s.deps.ResetPipelineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ResetResult{
		CatalogRecords:  result.CatalogRecords,
		OrderRows:       result.OrderRows,
		FulfillmentRows: result.FulfillmentRows,
		ProcessRows:     result.ProcessRows,
		ArchiveBundles:  result.ArchiveBundles,
		Blobs:           result.Blobs,
	})
}
