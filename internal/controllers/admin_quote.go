package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	"requestquote/internal/services"
	"requestquote/pkg/utils"
)

// AdminQuoteController is the back-office grid: list, inspect, delete,
// bulk delete and export.
type AdminQuoteController struct {
	quoteService services.QuoteServiceInterface
	logger       *zap.Logger
}

func NewAdminQuoteController(quoteService services.QuoteServiceInterface, logger *zap.Logger) *AdminQuoteController {
	return &AdminQuoteController{quoteService: quoteService, logger: logger}
}

func (c *AdminQuoteController) GetQuotes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	if ctx.QueryParam("format") == "xlsx" {
		filter.Page = 1
		filter.Offset = 0
		filter.Limit = 100000
		quotes, _, err := c.quoteService.GetQuotes(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, quotes)
	}

	quotes, total, err := c.quoteService.GetQuotes(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, quotes, "Quote requests fetched", http.StatusOK, total)
}

func (c *AdminQuoteController) FindQuote(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrorBadID(ctx.Param("id"), err), c.logger)
	}

	quote, err := c.quoteService.FindQuote(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, quote, "Quote request found", http.StatusOK)
}

func (c *AdminQuoteController) DeleteQuote(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrorBadID(ctx.Param("id"), err), c.logger)
	}

	if err := c.quoteService.DeleteQuote(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Quote request deleted successfully", http.StatusOK)
}

func (c *AdminQuoteController) BulkDeleteQuotes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.BulkDeleteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrorBadPayload(err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.quoteService.BulkDeleteQuotes(reqCtx, payload.IDs)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	message := fmt.Sprintf("%d quote request(s) deleted successfully", result.Deleted)
	return utils.SuccessResponse(ctx, result, message, http.StatusOK)
}

var exportHeaders = []string{
	"ID", "Product", "Shop", "Client Name", "Email", "Phone", "Note", "Submitted At",
}

func exportRow(q dto.QuoteDTO) []interface{} {
	phone, note := "", ""
	if q.Phone.Valid {
		phone = q.Phone.String
	}
	if q.Note.Valid {
		note = q.Note.String
	}
	return []interface{}{
		q.ID, q.ProductName, q.ShopID, q.ClientName, q.Email, phone, note, q.CreatedAt,
	}
}

func (c *AdminQuoteController) respondWithXLSX(ctx echo.Context, quotes []dto.QuoteDTO) error {
	f := excelize.NewFile()
	sheet := "Quote Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, q := range quotes {
		cell := fmt.Sprintf("A%d", i+2)
		row := exportRow(q)
		f.SetSheetRow(sheet, cell, &row)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="quote_requests.xlsx"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
