package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

var ErrProductHasStock = errors.New("only the price of a product with stock entries may change")

// catalogService implements the CatalogSvcFacade interface
type catalogService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	stockRepo   portsrepo.StockReader
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo portsrepo.ProductRepositoryFacade, stockRepo portsrepo.StockReader) portssvc.CatalogSvcFacade {
	return &catalogService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, operatorID string) (*domain.Product, error) {
	now := s.Now()
	product := domain.Product{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		RequiresSerials: req.RequiresSerials,
		ArticleNumber:   strings.TrimSpace(req.ArticleNumber),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	saved, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", product.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.Int64("product_id", saved.ProductID))
	return saved, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product", slog.Int64("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, operatorID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	updated := *product
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.RequiresSerials != nil {
		updated.RequiresSerials = *req.RequiresSerials
	}
	if req.ArticleNumber != nil {
		updated.ArticleNumber = strings.TrimSpace(*req.ArticleNumber)
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	// Identity fields are frozen once the ledger references the product
	if updated.Name != product.Name || updated.RequiresSerials != product.RequiresSerials || updated.ArticleNumber != product.ArticleNumber {
		count, err := s.stockRepo.CountStockEntries(ctx, productID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count stock entries", slog.Int64("product_id", productID))
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrProductHasStock)
		}
	}

	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = operatorID
	if err := s.productRepo.UpdateProduct(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Product updated", slog.Int64("product_id", productID))
	return &updated, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID int64, operatorID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID, operatorID, s.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		}
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.Int64("product_id", productID))
	return nil
}
