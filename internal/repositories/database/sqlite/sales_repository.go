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

// GormSalesRepository implements portsrepo.SalesRepositoryFacade on gorm.
type GormSalesRepository struct {
	BaseRepository
}

func newGormSalesRepository(db *gorm.DB) *GormSalesRepository {
	return &GormSalesRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SalesRepositoryFacade = (*GormSalesRepository)(nil)

func (r *GormSalesRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error) {
	var m models.Sale
	if err := r.DB.WithContext(ctx).First(&m, "sale_id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sale %d", apperrors.ErrNotFound, saleID)
		}
		return nil, internalErr(fmt.Sprintf("failed to find sale %d", saleID), err)
	}
	sale := mapping.ToDomainSale(m)
	return &sale, nil
}

func (r *GormSalesRepository) ListSales(ctx context.Context, from, to *time.Time) ([]domain.SaleRecord, error) {
	q := r.DB.WithContext(ctx).Model(&models.Sale{})
	if from != nil {
		q = q.Where("sale_timestamp >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("sale_timestamp < ?", to.UTC())
	}

	var ms []models.Sale
	if err := q.Order("sale_timestamp ASC, sale_id ASC").Find(&ms).Error; err != nil {
		return nil, internalErr("failed to list sales", err)
	}
	return mapping.ToDomainSaleSlice(ms), nil
}

func (r *GormSalesRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error) {
	m, err := insertSale(r.DB.WithContext(ctx), sale)
	if err != nil {
		return nil, err
	}
	saved := mapping.ToDomainSale(m)
	return &saved, nil
}

// insertSale validates and inserts a sale using db, which may be a transaction.
func insertSale(db *gorm.DB, sale domain.SaleRecord) (models.Sale, error) {
	m := mapping.ToModelSale(sale)
	m.SaleID = 0
	if err := models.Validate(m); err != nil {
		return models.Sale{}, err
	}
	if err := db.Create(&m).Error; err != nil {
		return models.Sale{}, internalErr("failed to insert sale", err)
	}
	return m, nil
}
