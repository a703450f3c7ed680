package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/pos_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertStockEntrySQL = `
	INSERT INTO stock_entries (product_id, quantity_delta, serials, entry_date, reason, sale_id, note, created_at, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING entry_id;
`

// PgxStockRepository implements portsrepo.StockRepositoryFacade
type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) *PgxStockRepository {
	return &PgxStockRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func (r *PgxStockRepository) SumStockByProduct(ctx context.Context, productID int64) (int64, error) {
	stock, err := sumStock(ctx, r.Pool, productID)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to sum stock for product %d", productID), err)
	}
	return stock, nil
}

func (r *PgxStockRepository) CountStockEntries(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM stock_entries WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to count stock entries for product %d", productID), err)
	}
	return count, nil
}

func (r *PgxStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error) {
	m := mapping.ToModelStockEntry(entry)
	if err := models.Validate(m); err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if m.QuantityDelta < 0 {
		// Lock the product row so concurrent decrements see each other
		if _, err := tx.Exec(ctx, `SELECT 1 FROM products WHERE product_id = $1 FOR UPDATE`, m.ProductID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to lock product", err)
		}
		stock, err := sumStock(ctx, tx, m.ProductID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to sum stock", err)
		}
		if stock+m.QuantityDelta < 0 {
			return nil, fmt.Errorf("%w: product %d has %d, cannot remove %d", apperrors.ErrOutOfStock, m.ProductID, stock, -m.QuantityDelta)
		}
	}

	err = tx.QueryRow(ctx, insertStockEntrySQL,
		m.ProductID, m.QuantityDelta, m.Serials, m.EntryDate, m.Reason, m.SaleID, m.Note, m.CreatedAt, m.CreatedBy,
	).Scan(&m.EntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert stock entry", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	saved := mapping.ToDomainStockEntry(m)
	return &saved, nil
}

// ListStockEntries retrieves ledger rows newest first using token-based pagination.
func (r *PgxStockRepository) ListStockEntries(ctx context.Context, filter string, limit int, nextToken *string) ([]domain.StockEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	// Deleted products stay joinable so history keeps their names
	query := `
		SELECT se.entry_id, se.product_id, COALESCE(p.name, ''), se.quantity_delta, se.serials, se.entry_date,
		       se.reason, se.sale_id, se.note, se.created_at, se.created_by
		FROM stock_entries se
		LEFT JOIN products p ON p.product_id = se.product_id
		WHERE TRUE
	`
	var args []any

	if filter != "" {
		args = append(args, containsPattern(filter))
		n := "$" + strconv.Itoa(len(args))
		query += ` AND (p.name ILIKE ` + n +
			` OR array_to_string(se.serials, ' ') ILIKE ` + n +
			` OR to_char(se.entry_date AT TIME ZONE 'UTC', 'YYYY-MM-DD HH24:MI:SS') LIKE ` + n + `)`
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		// Tuple comparison is concise and efficient in Postgres
		args = append(args, lastDate, lastID)
		query += ` AND (se.entry_date, se.entry_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY se.entry_date DESC, se.entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query stock entries", err)
	}
	defer rows.Close()

	results := make([]models.StockEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.StockEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.ProductID,
			&m.ProductName,
			&m.QuantityDelta,
			&m.Serials,
			&m.EntryDate,
			&m.Reason,
			&m.SaleID,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan stock entry row", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating stock entry rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.EntryID)
		nextTokenVal = &token
	}

	return mapping.ToDomainStockEntrySlice(results), nextTokenVal, nil
}

// insertEntriesBatch queues entry inserts on tx and collects their IDs.
func insertEntriesBatch(ctx context.Context, tx pgx.Tx, entries []models.StockEntry) error {
	batch := &pgx.Batch{}
	for i := range entries {
		m := &entries[i]
		batch.Queue(insertStockEntrySQL,
			m.ProductID, m.QuantityDelta, m.Serials, m.EntryDate, m.Reason, m.SaleID, m.Note, m.CreatedAt, m.CreatedBy,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&m.EntryID)
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert stock entries", err)
	}
	return nil
}
