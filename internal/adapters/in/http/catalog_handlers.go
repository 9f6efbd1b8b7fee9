package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogCandidate is one row of a catalog batch upload.
type CatalogCandidate struct {
	Substance            string          `json:"substance"`
	Name                 string          `json:"name"`
	Company              string          `json:"company"`
	UnitsPerPackLocal    float64         `json:"unitsPerPackLocal"`
	UnitsPerPackSupplier float64         `json:"unitsPerPackSupplier"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	ImageID              *string         `json:"imageId,omitempty"`
	EditOfRecordID       *string         `json:"editOfRecordId,omitempty"`
}

// CatalogBatchResponse summarizes a batch upsert.
type CatalogBatchResponse struct {
	Created             int      `json:"created"`
	Updated             int      `json:"updated"`
	Duplicates          int      `json:"duplicates"`
	DuplicateSubstances []string `json:"duplicateSubstances"`
}

// CatalogRecord is one catalog record on the read side.
type CatalogRecord struct {
	ID                   string          `json:"id"`
	Substance            string          `json:"substance"`
	Name                 string          `json:"name"`
	Company              string          `json:"company"`
	UnitsPerPackLocal    float64         `json:"unitsPerPackLocal"`
	UnitsPerPackSupplier float64         `json:"unitsPerPackSupplier"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	ImageURL             string          `json:"imageUrl,omitempty"`
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetAllCatalogQuery()

	records, err := s.deps.GetAllCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CatalogRecord, len(records))
	for i, record := range records {
		response[i] = CatalogRecord{
			ID:                   record.ID.String(),
			Substance:            record.Substance,
			Name:                 record.Name,
			Company:              record.Company,
			UnitsPerPackLocal:    record.UnitsPerPackLocal,
			UnitsPerPackSupplier: record.UnitsPerPackSupplier,
			UnitPrice:            record.UnitPrice,
			ImageURL:             record.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertCatalogBatch handles POST /api/v1/catalog/batch.
func (s *Server) UpsertCatalogBatch(ctx echo.Context) error {
	var body []CatalogCandidate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	candidates := make([]services.Candidate, 0, len(body))
	for _, c := range body {
		candidate := services.Candidate{
			Substance:            c.Substance,
			Name:                 c.Name,
			Company:              c.Company,
			UnitsPerPackLocal:    c.UnitsPerPackLocal,
			UnitsPerPackSupplier: c.UnitsPerPackSupplier,
			UnitPrice:            c.UnitPrice,
		}

		if c.ImageID != nil {
			imageID, err := kernel.UUIDFromString(*c.ImageID)
			if err != nil {
				return badRequest(ctx, "Invalid image id: "+err.Error())
			}
			candidate.ImageID = &imageID
		}

		if c.EditOfRecordID != nil {
			recordID, err := kernel.UUIDFromString(*c.EditOfRecordID)
			if err != nil {
				return badRequest(ctx, "Invalid record id: "+err.Error())
			}
			candidate.EditOfRecordID = &recordID
		}

		candidates = append(candidates, candidate)
	}

	cmd, err := commands.NewUpsertCatalogBatchCommand(candidates)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.UpsertCatalogBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CatalogBatchResponse{
		Created:             result.Summary.Created,
		Updated:             result.Summary.Updated,
		Duplicates:          result.Summary.Duplicates,
		DuplicateSubstances: result.Summary.DuplicateSubstances,
	})
}

// DeleteCatalogRecord handles DELETE /api/v1/catalog/:id.
func (s *Server) DeleteCatalogRecord(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid record id")
	}

	cmd, err := commands.NewDeleteCatalogRecordCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.DeleteCatalogRecordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
