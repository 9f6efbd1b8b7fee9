package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/process"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// UpdateFulfillmentRequest sets the supplier-confirmed amounts of one row.
type UpdateFulfillmentRequest struct {
	FinalOrder float64 `json:"finalOrder"`
	Bonus      float64 `json:"bonus"`
}

// FulfillmentRow is one supplier-side row on the read side.
type FulfillmentRow struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"orderId"`
	RowNumber            int             `json:"rowNumber"`
	Substance            string          `json:"substance"`
	Name                 string          `json:"name"`
	Company              string          `json:"company"`
	FinalOrder           float64         `json:"finalOrder"`
	Bonus                float64         `json:"bonus"`
	Confirmed            bool            `json:"confirmed"`
	UnitsPerPackSupplier float64         `json:"unitsPerPackSupplier"`
	FinalPackageAmount   float64         `json:"finalPackageAmount"`
	FinalUnitAmount      float64         `json:"finalUnitAmount"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	TotalPrice           decimal.Decimal `json:"totalPrice"`
}

// ProcessRow is one delivery-tracking row on the read side.
type ProcessRow struct {
	ID                 string          `json:"id"`
	FulfillmentID      string          `json:"fulfillmentId"`
	OrderID            string          `json:"orderId"`
	RowNumber          int             `json:"rowNumber"`
	Substance          string          `json:"substance"`
	Name               string          `json:"name"`
	BoxNumber          string          `json:"boxNumber"`
	Status             string          `json:"status"`
	FinalPackageAmount float64         `json:"finalPackageAmount"`
	FinalUnitAmount    float64         `json:"finalUnitAmount"`
	Urgent             bool            `json:"urgent"`
}

// UpdateProcessRequest partially updates a process row. Omitted fields keep
// their stored values.
type UpdateProcessRequest struct {
	BoxNumber *string `json:"boxNumber,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// CostReportRow is the cost projection of one fulfillment row.
type CostReportRow struct {
	FulfillmentID      string          `json:"fulfillmentId"`
	RowNumber          int             `json:"rowNumber"`
	Substance          string          `json:"substance"`
	Name               string          `json:"name"`
	FinalOrder         float64         `json:"finalOrder"`
	Bonus              float64         `json:"bonus"`
	FinalPackageAmount float64         `json:"finalPackageAmount"`
	BonusPercentage    decimal.Decimal `json:"bonusPercentage"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

// CostReport is the projection rows plus the grand total.
type CostReport struct {
	Rows       []CostReportRow `json:"rows"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// GetFulfillment handles GET /api/v1/fulfillment.
func (s *Server) GetFulfillment(ctx echo.Context) error {
	query := queries.NewGetAllFulfillmentQuery()

	rows, err := s.deps.GetAllFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]FulfillmentRow, len(rows))
	for i, row := range rows {
		response[i] = FulfillmentRow{
			ID:                   row.ID.String(),
			OrderID:              row.OrderID.String(),
			RowNumber:            row.RowNumber,
			Substance:            row.Substance,
			Name:                 row.Name,
			Company:              row.Company,
			FinalOrder:           row.FinalOrder,
			Bonus:                row.Bonus,
			Confirmed:            row.Confirmed,
			UnitsPerPackSupplier: row.UnitsPerPackSupplier,
			FinalPackageAmount:   row.FinalPackageAmount,
			FinalUnitAmount:      row.FinalUnitAmount,
			UnitPrice:            row.UnitPrice,
			TotalPrice:           row.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateFulfillment handles PUT /api/v1/fulfillment/:id.
func (s *Server) UpdateFulfillment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment row id")
	}

	var body UpdateFulfillmentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateFulfillmentCommand(id, body.FinalOrder, body.Bonus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.UpdateFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmFulfillment handles POST /api/v1/fulfillment/confirm.
func (s *Server) ConfirmFulfillment(ctx echo.Context) error {
	cmd := commands.NewConfirmFulfillmentCommand()

	confirmed, err := s.deps.ConfirmFulfillmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"confirmed": confirmed})
}

// GetProcesses handles GET /api/v1/processes.
func (s *Server) GetProcesses(ctx echo.Context) error {
	query := queries.NewGetAllProcessesQuery()

	rows, err := s.deps.GetAllProcessesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProcessRow, len(rows))
	for i, row := range rows {
		response[i] = ProcessRow{
			ID:                 row.ID.String(),
			FulfillmentID:      row.FulfillmentID.String(),
			OrderID:            row.OrderID.String(),
			RowNumber:          row.RowNumber,
			Substance:          row.Substance,
			Name:               row.Name,
			BoxNumber:          row.BoxNumber,
			Status:             string(row.Status),
			FinalPackageAmount: row.FinalPackageAmount,
			FinalUnitAmount:    row.FinalUnitAmount,
			Urgent:             row.Urgent,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateProcess handles PUT /api/v1/processes/:id.
func (s *Server) UpdateProcess(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid process row id")
	}

	var body UpdateProcessRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *process.Status
	if body.Status != nil {
		parsed := process.Status(*body.Status)
		status = &parsed
	}

	cmd, err := commands.NewUpdateProcessCommand(id, body.BoxNumber, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.UpdateProcessHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCostReport handles GET /api/v1/reports/cost.
func (s *Server) GetCostReport(ctx echo.Context) error {
	query := queries.NewGetCostReportQuery()

	report, err := s.deps.GetCostReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CostReport{
		Rows:       make([]CostReportRow, len(report.Rows)),
		GrandTotal: report.GrandTotal,
	}
	for i, row := range report.Rows {
		response.Rows[i] = CostReportRow{
			FulfillmentID:      row.FulfillmentID.String(),
			RowNumber:          row.RowNumber,
			Substance:          row.Substance,
			Name:               row.Name,
			FinalOrder:         row.FinalOrder,
			Bonus:              row.Bonus,
			FinalPackageAmount: row.FinalPackageAmount,
			BonusPercentage:    row.BonusPercentage,
			UnitPrice:          row.UnitPrice,
			TotalPrice:         row.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
