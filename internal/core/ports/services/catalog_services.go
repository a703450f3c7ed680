package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

// CatalogReaderSvc defines read operations for catalog data
type CatalogReaderSvc interface {
	// GetProductByID retrieves a live product. Returns apperrors.ErrNotFound for unknown or deleted IDs.
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves all live products.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CatalogWriterSvc defines write operations for catalog data
type CatalogWriterSvc interface {
	// CreateProduct validates and persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, operatorID string) (*domain.Product, error)

	// UpdateProduct changes product fields. Once the product has ledger entries
	// only its price may change.
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, operatorID string) (*domain.Product, error)

	// DeleteProduct removes a product from the catalog without touching ledger or journal rows.
	DeleteProduct(ctx context.Context, productID int64, operatorID string) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
