package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests against the stock ledger.
type stockHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newStockHandler(ls portssvc.LedgerSvcFacade) *stockHandler {
	return &stockHandler{ledgerService: ls}
}

// registerStockRoutes registers routes related to stock entries.
func registerStockRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newStockHandler(ledgerService)

	stock := rg.Group("/stock")
	{
		stock.POST("/entries", h.createEntry)
		stock.GET("/entries", h.listEntries)
	}
}

// createEntry godoc
// @Summary Append a stock entry
// @Description Records incoming goods or a correction. Sale entries are written by checkout only.
// @Tags stock
// @Accept json
// @Produce json
// @Param entry body dto.CreateStockEntryRequest true "Stock movement"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown product"
// @Failure 409 {object} ErrorResponse "Correction exceeds current stock"
// @Security BearerAuth
// @Router /stock/entries [post]
func (h *stockHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStockEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := requireOperator(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.AppendEntry(c.Request.Context(), req.ToDomainStockEntry(), operatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to append stock entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockEntryResponse(entry))
}

// listEntries godoc
// @Summary Stock ledger history
// @Description Newest first. The filter matches product name, serial numbers or entry date (YYYY-MM-DD).
// @Tags stock
// @Produce json
// @Param filter query string false "Substring filter"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListStockEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock/entries [get]
func (h *stockHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListStockEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListStockEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.History(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list stock entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}
