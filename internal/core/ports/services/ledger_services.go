package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

// StockReaderSvc defines the derived-stock and history queries
type StockReaderSvc interface {
	// CurrentStock returns the sum of all quantity deltas for the product, 0 if none.
	CurrentStock(ctx context.Context, productID int64) (int64, error)

	// History lists ledger entries newest first, filtered and paginated.
	History(ctx context.Context, params dto.ListStockEntriesParams) (*dto.ListStockEntriesResponse, error)
}

// StockWriterSvc defines the append operation of the ledger
type StockWriterSvc interface {
	// AppendEntry validates and appends a stock movement. SALE entries are rejected;
	// they are written by checkout only.
	AppendEntry(ctx context.Context, entry domain.StockEntry, operatorID string) (*domain.StockEntry, error)
}

// LedgerSvcFacade combines all stock ledger service interfaces
type LedgerSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
