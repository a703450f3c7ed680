package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// CheckoutCommitter persists a sale as one atomic unit of work.
type CheckoutCommitter interface {
	// CommitCheckout re-derives stock for every product referenced by entries,
	// fails with apperrors.ErrStockChanged when any product lacks enough units,
	// and otherwise appends the sale and all entries (linked by sale ID) in a
	// single store transaction. On error nothing is persisted.
	CommitCheckout(ctx context.Context, sale domain.SaleRecord, entries []domain.StockEntry) (*domain.SaleRecord, []domain.StockEntry, error)
}
