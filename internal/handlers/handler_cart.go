package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cartHandler exposes cart sessions and checkout.
type cartHandler struct {
	cartSessions portssvc.CartSessionSvc
}

func newCartHandler(cs portssvc.CartSessionSvc) *cartHandler {
	return &cartHandler{cartSessions: cs}
}

// registerCartRoutes registers routes related to carts.
func registerCartRoutes(rg *gin.RouterGroup, cartSessions portssvc.CartSessionSvc) {
	h := newCartHandler(cartSessions)

	carts := rg.Group("/carts")
	{
		carts.POST("", h.openCart)
		carts.GET("/:cartID", h.getCart)
		carts.POST("/:cartID/lines", h.addLine)
		carts.DELETE("/:cartID", h.discardCart)
		carts.POST("/:cartID/checkout", h.checkout)
	}
}

// openCart godoc
// @Summary Open an empty cart
// @Tags carts
// @Produce json
// @Success 201 {object} dto.CartResponse
// @Security BearerAuth
// @Router /carts [post]
func (h *cartHandler) openCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cart, err := h.cartSessions.OpenCart(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to open cart")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCartResponse(cart))
}

// getCart godoc
// @Summary Get a cart
// @Tags carts
// @Produce json
// @Param cartID path string true "Cart ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /carts/{cartID} [get]
func (h *cartHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cart, err := h.cartSessions.GetCart(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// addLine godoc
// @Summary Add one unit of a product to a cart
// @Description The unit price is captured now. Fails when the cart already holds all remaining stock.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param line body dto.AddCartLineRequest true "Product to add"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ErrorResponse "Unknown cart or product"
// @Failure 409 {object} ErrorResponse "Out of stock"
// @Security BearerAuth
// @Router /carts/{cartID}/lines [post]
func (h *cartHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddCartLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cart, err := h.cartSessions.AddLine(c.Request.Context(), c.Param("cartID"), req.ProductID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add product to cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// discardCart godoc
// @Summary Cancel a cart
// @Tags carts
// @Param cartID path string true "Cart ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /carts/{cartID} [delete]
func (h *cartHandler) discardCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.cartSessions.DiscardCart(c.Request.Context(), c.Param("cartID")); err != nil {
		respondWithError(c, logger, err, "Failed to discard cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// checkout godoc
// @Summary Check out a cart
// @Description Re-validates stock, records the sale and returns the receipt. The cart is closed on success.
// @Tags carts
// @Accept json
// @Produce json
// @Param cartID path string true "Cart ID"
// @Param checkout body dto.CheckoutRequest true "Payment"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} ErrorResponse "Invalid payment method"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stock changed since the items were added"
// @Failure 422 {object} ErrorResponse "Empty cart"
// @Security BearerAuth
// @Router /carts/{cartID}/checkout [post]
func (h *cartHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Checkout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	operatorID, ok := requireOperator(c, logger)
	if !ok {
		return
	}

	cartID := c.Param("cartID")
	receipt, err := h.cartSessions.CheckoutCart(c.Request.Context(), cartID, req.PaymentMethod, operatorID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("cart_id", cartID)), err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
