package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// CreateStockEntryRequest appends an incoming or correcting movement to the ledger.
// Sale movements are only ever written by checkout.
type CreateStockEntryRequest struct {
	ProductID     int64      `json:"productID" binding:"required,gt=0"`
	QuantityDelta int64      `json:"quantityDelta" binding:"required"`
	Serials       []string   `json:"serials" binding:"omitempty,dive,required,max=128"`
	EntryDate     *time.Time `json:"entryDate"` // Optional, defaults to today
	Reason        string     `json:"reason" binding:"omitempty,oneof=INCOMING CORRECTION"`
	Note          string     `json:"note" binding:"max=255"`
}

// ListStockEntriesParams holds the query parameters of the ledger history.
type ListStockEntriesParams struct {
	Filter    string  `form:"filter" binding:"max=100"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// StockEntryResponse defines the data returned for a ledger entry.
type StockEntryResponse struct {
	EntryID       int64     `json:"entryID"`
	ProductID     int64     `json:"productID"`
	ProductName   string    `json:"productName"`
	QuantityDelta int64     `json:"quantityDelta"`
	Serials       []string  `json:"serials"`
	EntryDate     time.Time `json:"entryDate"`
	Reason        string    `json:"reason"`
	SaleID        *int64    `json:"saleID,omitempty"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ListStockEntriesResponse wraps one page of history.
type ListStockEntriesResponse struct {
	Entries   []StockEntryResponse `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToDomainStockEntry converts the request into an unsaved ledger entry.
func (r CreateStockEntryRequest) ToDomainStockEntry() domain.StockEntry {
	entry := domain.StockEntry{
		ProductID:     r.ProductID,
		QuantityDelta: r.QuantityDelta,
		Serials:       r.Serials,
		Reason:        domain.StockReason(r.Reason),
		Note:          r.Note,
	}
	if r.EntryDate != nil {
		entry.EntryDate = *r.EntryDate
	}
	return entry
}

// ToStockEntryResponse converts a domain.StockEntry to its DTO.
func ToStockEntryResponse(e *domain.StockEntry) StockEntryResponse {
	serials := e.Serials
	if serials == nil {
		serials = []string{}
	}
	return StockEntryResponse{
		EntryID:       e.EntryID,
		ProductID:     e.ProductID,
		ProductName:   e.ProductName,
		QuantityDelta: e.QuantityDelta,
		Serials:       serials,
		EntryDate:     e.EntryDate,
		Reason:        string(e.Reason),
		SaleID:        e.SaleID,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
	}
}

// ToStockEntryResponses converts a slice of domain.StockEntry.
func ToStockEntryResponses(entries []domain.StockEntry) []StockEntryResponse {
	responses := make([]StockEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToStockEntryResponse(&entries[i])
	}
	return responses
}
