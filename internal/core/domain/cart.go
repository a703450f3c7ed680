package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one selected unit. Name and UnitPrice are snapshots taken when the
// line was added, so later catalog edits never reach an open cart.
type CartLine struct {
	ProductID int64           `json:"productID"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	AddedAt   time.Time       `json:"addedAt"`
}

// Cart is the ephemeral selection of a single checkout session.
// Every add produces its own line; lines for the same product are never merged.
type Cart struct {
	CartID    string     `json:"cartID"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewCart returns an empty cart.
func NewCart(cartID string, createdAt time.Time) *Cart {
	return &Cart{CartID: cartID, CreatedAt: createdAt}
}

// AddLine appends a line for product with its current price. It performs no
// stock check; use the cart service for that.
func (c *Cart) AddLine(product Product, at time.Time) CartLine {
	line := CartLine{
		ProductID: product.ProductID,
		Name:      product.Name,
		UnitPrice: product.Price,
		AddedAt:   at,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total is the sum of the captured unit prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice)
	}
	return total
}

// Names returns line names in insertion order.
func (c *Cart) Names() []string {
	names := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		names[i] = l.Name
	}
	return names
}

// QuantityOf counts the lines holding productID.
func (c *Cart) QuantityOf(productID int64) int64 {
	var n int64
	for _, l := range c.Lines {
		if l.ProductID == productID {
			n++
		}
	}
	return n
}
