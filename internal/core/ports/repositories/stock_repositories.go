package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// StockReader defines the derived-stock and history queries of the ledger
type StockReader interface {
	// SumStockByProduct returns SUM(quantity_delta) for the product, 0 when it has no entries.
	SumStockByProduct(ctx context.Context, productID int64) (int64, error)

	// CountStockEntries returns how many ledger entries reference the product.
	CountStockEntries(ctx context.Context, productID int64) (int64, error)

	// ListStockEntries returns entries newest first, joined with the product name.
	// filter matches product name, serial text or entry date substring. Token-based pagination.
	ListStockEntries(ctx context.Context, filter string, limit int, nextToken *string) ([]domain.StockEntry, *string, error)
}

// StockWriter defines the single mutator of the ledger
type StockWriter interface {
	// SaveStockEntry appends an entry and returns it with its assigned ID.
	// A negative entry that would take derived stock below zero fails with apperrors.ErrOutOfStock.
	SaveStockEntry(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error)
}

// StockRepositoryFacade combines all ledger repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
