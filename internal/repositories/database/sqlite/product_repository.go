package sqlite

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
	"gorm.io/gorm"
)

// GormProductRepository implements portsrepo.ProductRepositoryFacade on gorm.
type GormProductRepository struct {
	BaseRepository
}

func newGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ProductRepositoryFacade = (*GormProductRepository)(nil)

func (r *GormProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var m models.Product
	if err := r.DB.WithContext(ctx).First(&m, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
		}
		return nil, internalErr(fmt.Sprintf("failed to find product %d", productID), err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *GormProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var ms []models.Product
	if err := r.DB.WithContext(ctx).Order("name ASC, product_id ASC").Find(&ms).Error; err != nil {
		return nil, internalErr("failed to list products", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *GormProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	m := mapping.ToModelProduct(product)
	m.ProductID = 0
	if err := models.Validate(m); err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, internalErr("failed to insert product", err)
	}
	saved := mapping.ToDomainProduct(m)
	return &saved, nil
}

func (r *GormProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	if err := models.Validate(m); err != nil {
		return err
	}
	result := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("product_id = ?", m.ProductID).
		Updates(map[string]any{
			"name":             m.Name,
			"price":            m.Price,
			"requires_serials": m.RequiresSerials,
			"article_number":   m.ArticleNumber,
			"last_updated_at":  m.LastUpdatedAt,
			"last_updated_by":  m.LastUpdatedBy,
		})
	if result.Error != nil {
		return internalErr(fmt.Sprintf("failed to update product %d", m.ProductID), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, m.ProductID)
	}
	return nil
}

func (r *GormProductRepository) DeleteProduct(ctx context.Context, productID int64, deletedBy string, deletedAt time.Time) error {
	// The soft delete scope limits this to live rows
	result := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"deleted_at":      deletedAt.UTC(),
			"last_updated_at": deletedAt.UTC(),
			"last_updated_by": deletedBy,
		})
	if result.Error != nil {
		return internalErr(fmt.Sprintf("failed to delete product %d", productID), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", apperrors.ErrNotFound, productID)
	}
	return nil
}
