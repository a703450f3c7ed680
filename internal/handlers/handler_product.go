package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	catalogService portssvc.CatalogSvcFacade
	ledgerService  portssvc.StockReaderSvc
}

func newProductHandler(cs portssvc.CatalogSvcFacade, ls portssvc.StockReaderSvc) *productHandler {
	return &productHandler{
		catalogService: cs,
		ledgerService:  ls,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, ledgerService portssvc.StockReaderSvc) {
	h := newProductHandler(catalogService, ledgerService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
		products.GET("/:productID/stock", h.getProductStock)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := requireOperator(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, operatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Only the price may change once the product has stock entries.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := requireOperator(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), productID, req, operatorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes the product from the catalog. Ledger and journal history are kept.
// @Tags products
// @Param productID path int true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}
	operatorID, ok := requireOperator(c, logger)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), productID, operatorID); err != nil {
		respondWithError(c, logger, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// getProductStock godoc
// @Summary Current stock of a product
// @Description Stock is derived from the ledger on every call.
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.ProductStockResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID}/stock [get]
func (h *productHandler) getProductStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	if _, err := h.catalogService.GetProductByID(c.Request.Context(), productID); err != nil {
		respondWithError(c, logger, err, "Failed to retrieve product")
		return
	}
	stock, err := h.ledgerService.CurrentStock(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to derive stock")
		return
	}
	c.JSON(http.StatusOK, dto.ProductStockResponse{ProductID: productID, CurrentStock: stock})
}
