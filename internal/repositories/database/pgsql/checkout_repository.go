package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCheckoutRepository implements portsrepo.CheckoutCommitter
type PgxCheckoutRepository struct {
	BaseRepository
}

func newPgxCheckoutRepository(pool *pgxpool.Pool) *PgxCheckoutRepository {
	return &PgxCheckoutRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CheckoutCommitter = (*PgxCheckoutRepository)(nil)

// CommitCheckout re-checks stock and writes the sale with its ledger entries in one transaction.
func (r *PgxCheckoutRepository) CommitCheckout(ctx context.Context, sale domain.SaleRecord, entries []domain.StockEntry) (*domain.SaleRecord, []domain.StockEntry, error) {
	// Locking in ID order keeps concurrent checkouts from deadlocking
	required, productIDs := domain.OutgoingUnits(entries)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	// 1. Lock product rows, then re-derive stock under the lock
	if _, err := tx.Exec(ctx,
		`SELECT product_id FROM products WHERE product_id = ANY($1) ORDER BY product_id FOR UPDATE`,
		productIDs,
	); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to lock products", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT product_id, COALESCE(SUM(quantity_delta), 0) FROM stock_entries WHERE product_id = ANY($1) GROUP BY product_id`,
		productIDs,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to re-derive stock", err)
	}
	stock := make(map[int64]int64, len(productIDs))
	for rows.Next() {
		var level models.StockLevel
		if err := rows.Scan(&level.ProductID, &level.Stock); err != nil {
			rows.Close()
			return nil, nil, apperrors.NewAppError(500, "failed to scan stock level", err)
		}
		stock[level.ProductID] = level.Stock
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating stock levels", err)
	}

	var short []int64
	for _, id := range productIDs {
		if stock[id] < required[id] {
			short = append(short, id)
		}
	}
	if len(short) > 0 {
		return nil, nil, fmt.Errorf("%w: products %v", apperrors.ErrStockChanged, short)
	}

	// 2. Insert the journal record
	savedSale, err := insertSale(ctx, tx, sale)
	if err != nil {
		return nil, nil, err
	}

	// 3. Append the sale entries linked to it
	entryModels := make([]models.StockEntry, len(entries))
	for i, e := range entries {
		entryModels[i] = mapping.ToModelStockEntry(e)
		entryModels[i].SaleID = &savedSale.SaleID
		if err := models.Validate(entryModels[i]); err != nil {
			return nil, nil, err
		}
	}
	if len(entryModels) > 0 {
		if err := insertEntriesBatch(ctx, tx, entryModels); err != nil {
			return nil, nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	savedEntries := mapping.ToDomainStockEntrySlice(entryModels)
	for i := range savedEntries {
		savedEntries[i].ProductName = entries[i].ProductName
	}
	domainSale := mapping.ToDomainSale(savedSale)
	return &domainSale, savedEntries, nil
}
