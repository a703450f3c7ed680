package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// StockReason tags why a stock movement happened.
type StockReason string

const (
	ReasonIncoming   StockReason = "INCOMING"
	ReasonSale       StockReason = "SALE"
	ReasonCorrection StockReason = "CORRECTION"
)

var (
	ErrZeroQuantity      = errors.New("stock entry quantity delta must not be zero")
	ErrSerialCount       = errors.New("serial count does not match quantity")
	ErrSerialsOnOutgoing = errors.New("outgoing stock entries must not carry serials")
	ErrBlankSerial       = errors.New("serial numbers must not be blank")
	ErrUnknownReason     = errors.New("unknown stock entry reason")
	ErrSaleReasonSign    = errors.New("sale entries must decrement stock")
)

// StockEntry is one immutable record of the stock ledger.
// Current stock for a product is always the sum of QuantityDelta over its entries.
type StockEntry struct {
	EntryID       int64       `json:"entryID"`
	ProductID     int64       `json:"productID"`
	ProductName   string      `json:"productName"` // Read projection only, joined at query time
	QuantityDelta int64       `json:"quantityDelta"`
	Serials       []string    `json:"serials"`
	EntryDate     time.Time   `json:"entryDate"`
	Reason        StockReason `json:"reason"`
	SaleID        *int64      `json:"saleID,omitempty"`
	Note          string      `json:"note"`
	CreatedAt     time.Time   `json:"createdAt"`
	CreatedBy     string      `json:"createdBy"`
}

// IsValid reports whether the reason is one of the known values.
func (r StockReason) IsValid() bool {
	switch r {
	case ReasonIncoming, ReasonSale, ReasonCorrection:
		return true
	}
	return false
}

// Validate checks the entry against the product it moves.
func (e StockEntry) Validate(product Product) error {
	if e.QuantityDelta == 0 {
		return ErrZeroQuantity
	}
	if !e.Reason.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownReason, e.Reason)
	}
	if e.Reason == ReasonSale && e.QuantityDelta > 0 {
		return ErrSaleReasonSign
	}
	if e.QuantityDelta < 0 {
		if len(e.Serials) > 0 {
			return ErrSerialsOnOutgoing
		}
		return nil
	}
	if product.RequiresSerials && int64(len(e.Serials)) != e.QuantityDelta {
		return fmt.Errorf("%w: product %d requires %d serials, got %d",
			ErrSerialCount, product.ProductID, e.QuantityDelta, len(e.Serials))
	}
	for _, s := range e.Serials {
		if strings.TrimSpace(s) == "" {
			return ErrBlankSerial
		}
	}
	return nil
}

// OutgoingUnits counts the units each product loses through entries and
// returns the affected product IDs in ascending order.
func OutgoingUnits(entries []StockEntry) (map[int64]int64, []int64) {
	units := make(map[int64]int64)
	for _, e := range entries {
		if e.QuantityDelta < 0 {
			units[e.ProductID] += -e.QuantityDelta
		}
	}
	productIDs := make([]int64, 0, len(units))
	for id := range units {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })
	return units, productIDs
}
