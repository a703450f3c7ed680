package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, name, price, requires_serials, article_number,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxProductRepository implements portsrepo.ProductRepositoryFacade
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Price,
		&m.RequiresSerials,
		&m.ArticleNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 AND deleted_at IS NULL;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find product %d", productID), err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL ORDER BY name ASC, product_id ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list products", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	m := mapping.ToModelProduct(product)
	if err := models.Validate(m); err != nil {
		return nil, err
	}
	query := `
		INSERT INTO products (name, price, requires_serials, article_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Price, m.RequiresSerials, m.ArticleNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ProductID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert product", err)
	}
	saved := mapping.ToDomainProduct(m)
	return &saved, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	if err := models.Validate(m); err != nil {
		return err
	}
	query := `
		UPDATE products
		SET name = $1, price = $2, requires_serials = $3, article_number = $4, last_updated_at = $5, last_updated_by = $6
		WHERE product_id = $7 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Price, m.RequiresSerials, m.ArticleNumber, m.LastUpdatedAt, m.LastUpdatedBy, m.ProductID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update product %d", m.ProductID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, m.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE products
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE product_id = $3 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, deletedAt.UTC(), deletedBy, productID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete product %d", productID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
	}
	return nil
}
