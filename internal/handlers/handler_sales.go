package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// salesHandler serves the read side of the sales journal.
type salesHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newSalesHandler(js portssvc.JournalSvcFacade) *salesHandler {
	return &salesHandler{journalService: js}
}

// registerSalesRoutes registers routes related to the sales journal.
func registerSalesRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newSalesHandler(journalService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.GET("/export", h.exportSales)
		sales.GET("/:saleID", h.getSale)
	}
}

func bindSalesRange(c *gin.Context, logger *slog.Logger) (dto.ListSalesParams, bool) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind sales range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

// listSales godoc
// @Summary Query the sales journal
// @Description Oldest first. Both bounds are optional local calendar days, to is inclusive.
// @Tags sales
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindSalesRange(c, logger)
	if !ok {
		return
	}

	sales, err := h.journalService.QuerySales(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce json
// @Param saleID path int true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *salesHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID, ok := parseIDParam(c, "saleID")
	if !ok {
		return
	}

	sale, err := h.journalService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// exportSales godoc
// @Summary Export the sales journal
// @Description Returns an XLSX workbook with one row per sale and per payment method totals.
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/export [get]
func (h *salesHandler) exportSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindSalesRange(c, logger)
	if !ok {
		return
	}

	// Rendered into memory first so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := h.journalService.ExportSales(c.Request.Context(), params, &buf); err != nil {
		respondWithError(c, logger, err, "Failed to export sales")
		return
	}

	filename := "sales"
	if params.From != nil {
		filename += "_" + params.From.Format("2006-01-02")
	}
	if params.To != nil {
		filename += "_" + params.To.Format("2006-01-02")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
