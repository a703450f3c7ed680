package mapping

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/models"
)

// ToModelStockEntry converts a domain StockEntry to a model StockEntry.
// Times are stored in UTC so text-backed stores order them correctly.
func ToModelStockEntry(d domain.StockEntry) models.StockEntry {
	serials := d.Serials
	if serials == nil {
		serials = []string{}
	}
	return models.StockEntry{
		EntryID:       d.EntryID,
		ProductID:     d.ProductID,
		QuantityDelta: d.QuantityDelta,
		Serials:       serials,
		EntryDate:     d.EntryDate.UTC(),
		Reason:        string(d.Reason),
		SaleID:        d.SaleID,
		Note:          d.Note,
		CreatedAt:     d.CreatedAt.UTC(),
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainStockEntry converts a model StockEntry to a domain StockEntry
func ToDomainStockEntry(m models.StockEntry) domain.StockEntry {
	serials := m.Serials
	if serials == nil {
		serials = []string{}
	}
	return domain.StockEntry{
		EntryID:       m.EntryID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		QuantityDelta: m.QuantityDelta,
		Serials:       serials,
		EntryDate:     m.EntryDate,
		Reason:        domain.StockReason(m.Reason),
		SaleID:        m.SaleID,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainStockEntrySlice converts a slice of model StockEntries
func ToDomainStockEntrySlice(ms []models.StockEntry) []domain.StockEntry {
	entries := make([]domain.StockEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainStockEntry(m)
	}
	return entries
}
