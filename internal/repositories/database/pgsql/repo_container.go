package pgsql

import (
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newPgxProductRepository(dbPool),
		StockRepo:    newPgxStockRepository(dbPool),
		SalesRepo:    newPgxSalesRepository(dbPool),
		CheckoutRepo: newPgxCheckoutRepository(dbPool),
	}
}
