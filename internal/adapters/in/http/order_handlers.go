package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SaveOrderRequest is the payload for creating or replacing a ledger row.
type SaveOrderRequest struct {
	RowNumber      int     `json:"rowNumber"`
	Substance      string  `json:"substance"`
	CurrentBalance float64 `json:"currentBalance"`
	RequestedPacks float64 `json:"requestedPacks"`
	ConfirmedPacks float64 `json:"confirmedPacks"`
	Urgent         bool    `json:"urgent"`
}

// SetUrgentRequest toggles the urgency flag of a ledger row.
type SetUrgentRequest struct {
	Urgent bool `json:"urgent"`
}

// OrderRow is one ledger row on the read side.
type OrderRow struct {
	ID                string          `json:"id"`
	RowNumber         int             `json:"rowNumber"`
	Substance         string          `json:"substance"`
	Name              string          `json:"name"`
	Company           string          `json:"company"`
	UnitsPerPackLocal float64         `json:"unitsPerPackLocal"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	CurrentBalance    float64         `json:"currentBalance"`
	RequestedPacks    float64         `json:"requestedPacks"`
	ConfirmedPacks    float64         `json:"confirmedPacks"`
	FinalBalance      float64         `json:"finalBalance"`
	RequestedUnits    float64         `json:"requestedUnits"`
	ConfirmedUnits    float64         `json:"confirmedUnits"`
	Urgent            bool            `json:"urgent"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrderRowsQuery()

	rows, err := s.deps.GetAllOrderRowsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderRow, len(rows))
	for i, row := range rows {
		response[i] = OrderRow{
			ID:                row.ID.String(),
			RowNumber:         row.RowNumber,
			Substance:         row.Substance,
			Name:              row.Name,
			Company:           row.Company,
			UnitsPerPackLocal: row.UnitsPerPackLocal,
			UnitPrice:         row.UnitPrice,
			CurrentBalance:    row.CurrentBalance,
			RequestedPacks:    row.RequestedPacks,
			ConfirmedPacks:    row.ConfirmedPacks,
			FinalBalance:      row.FinalBalance,
			RequestedUnits:    row.RequestedUnits,
			ConfirmedUnits:    row.ConfirmedUnits,
			Urgent:            row.Urgent,
			ImageURL:          row.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SaveOrder handles POST /api/v1/orders. Saving to an occupied row number
// replaces that row's content in place.
func (s *Server) SaveOrder(ctx echo.Context) error {
	var body SaveOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveOrderRowCommand(
		body.RowNumber,
		body.Substance,
		body.CurrentBalance,
		body.RequestedPacks,
		body.ConfirmedPacks,
		body.Urgent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	rowID, err := s.deps.SaveOrderRowHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": rowID.String()})
}

// SetUrgent handles PUT /api/v1/orders/:id/urgent.
func (s *Server) SetUrgent(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order row id")
	}

	var body SetUrgentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetUrgentCommand(id, body.Urgent)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.SetUrgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Downstream fulfillment and
// process rows are removed in the same transaction.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order row id")
	}

	cmd, err := commands.NewDeleteOrderRowCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.DeleteOrderRowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendToFulfillment handles POST /api/v1/orders/send.
func (s *Server) SendToFulfillment(ctx echo.Context) error {
	cmd := commands.NewSendToFulfillmentCommand()

	sent, err := s.deps.SendToFulfillmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"sent": sent})
}
