package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `sale_id, sale_timestamp, total_amount, tax_amount, tax_rate_percent, payment_method, items_summary, created_by`

// PgxSalesRepository implements portsrepo.SalesRepositoryFacade
type PgxSalesRepository struct {
	BaseRepository
}

func newPgxSalesRepository(pool *pgxpool.Pool) *PgxSalesRepository {
	return &PgxSalesRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesRepositoryFacade = (*PgxSalesRepository)(nil)

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.Timestamp,
		&m.TotalAmount,
		&m.TaxAmount,
		&m.TaxRatePercent,
		&m.PaymentMethod,
		&m.ItemsSummary,
		&m.CreatedBy,
	)
	return m, err
}

func (r *PgxSalesRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error) {
	m, err := scanSale(r.Pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1;`, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %d", apperrors.ErrNotFound, saleID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find sale %d", saleID), err)
	}
	sale := mapping.ToDomainSale(m)
	return &sale, nil
}

func (r *PgxSalesRepository) ListSales(ctx context.Context, from, to *time.Time) ([]domain.SaleRecord, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE TRUE`
	var args []any
	if from != nil {
		args = append(args, from.UTC())
		query += ` AND sale_timestamp >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, to.UTC())
		query += ` AND sale_timestamp < $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY sale_timestamp ASC, sale_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list sales", err)
	}
	defer rows.Close()

	var ms []models.Sale
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}
	return mapping.ToDomainSaleSlice(ms), nil
}

func (r *PgxSalesRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error) {
	m, err := insertSale(ctx, r.Pool, sale)
	if err != nil {
		return nil, err
	}
	saved := mapping.ToDomainSale(m)
	return &saved, nil
}

// insertSale validates and inserts a sale through q, which may be a transaction.
func insertSale(ctx context.Context, q querier, sale domain.SaleRecord) (models.Sale, error) {
	m := mapping.ToModelSale(sale)
	if err := models.Validate(m); err != nil {
		return models.Sale{}, err
	}
	query := `
		INSERT INTO sales (sale_timestamp, total_amount, tax_amount, tax_rate_percent, payment_method, items_summary, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sale_id;
	`
	err := q.QueryRow(ctx, query,
		m.Timestamp, m.TotalAmount, m.TaxAmount, m.TaxRatePercent, m.PaymentMethod, m.ItemsSummary, m.CreatedBy,
	).Scan(&m.SaleID)
	if err != nil {
		return models.Sale{}, apperrors.NewAppError(500, "failed to insert sale", err)
	}
	return m, nil
}
