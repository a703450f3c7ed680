package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNameMissing = errors.New("product name is required")
	ErrNegativePrice      = errors.New("product price must not be negative")
)

// Product is an authoritative catalog record consulted by the ledger and checkout.
type Product struct {
	ProductID       int64           `json:"productID"` // Assigned by the store, never reused
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	RequiresSerials bool            `json:"requiresSerials"` // Incoming stock must carry one serial per unit
	ArticleNumber   string          `json:"articleNumber"`   // Optional, opaque
	AuditFields
}

// Validate checks the field-level invariants of a product.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrProductNameMissing
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
