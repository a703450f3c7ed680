package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// SalesReader defines read operations for the sales journal
type SalesReader interface {
	FindSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error)

	// ListSales returns sales with from <= timestamp < to, oldest first. Nil bounds are open.
	ListSales(ctx context.Context, from, to *time.Time) ([]domain.SaleRecord, error)
}

// SalesWriter defines the append operation of the sales journal
type SalesWriter interface {
	SaveSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error)
}

// SalesRepositoryFacade combines all sales journal repository interfaces
type SalesRepositoryFacade interface {
	SalesReader
	SalesWriter
}
