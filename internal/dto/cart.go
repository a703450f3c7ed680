package dto

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddCartLineRequest selects one unit of a product.
type AddCartLineRequest struct {
	ProductID int64 `json:"productID" binding:"required,gt=0"`
}

// CheckoutRequest finalizes a cart.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,max=32"`
}

// CartResponse is the current state of a cart session.
type CartResponse struct {
	CartID string            `json:"cartID"`
	Lines  []domain.CartLine `json:"lines"`
	Total  decimal.Decimal   `json:"total"`
}

// ToCartResponse converts a domain.Cart to its DTO.
func ToCartResponse(c *domain.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{
		CartID: c.CartID,
		Lines:  lines,
		Total:  c.Total(),
	}
}
