package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a live (not deleted) product. Returns apperrors.ErrNotFound otherwise.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts returns all live products ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// SaveProduct inserts a new product and returns it with its assigned ID.
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProduct overwrites the mutable fields of an existing live product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct soft-deletes a product. Ledger and journal rows are not touched.
	DeleteProduct(ctx context.Context, productID int64, deletedBy string, deletedAt time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
