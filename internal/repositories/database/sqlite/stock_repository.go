package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/pos_ledger_app/internal/utils/pagination"
	"gorm.io/gorm"
)

const defaultPageSize = 50

// GormStockRepository implements portsrepo.StockRepositoryFacade on gorm.
type GormStockRepository struct {
	BaseRepository
}

func newGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{BaseRepository{DB: db}}
}

var _ portsrepo.StockRepositoryFacade = (*GormStockRepository)(nil)

func (r *GormStockRepository) SumStockByProduct(ctx context.Context, productID int64) (int64, error) {
	stock, err := sumStock(r.DB.WithContext(ctx), productID)
	if err != nil {
		return 0, internalErr(fmt.Sprintf("failed to sum stock for product %d", productID), err)
	}
	return stock, nil
}

func (r *GormStockRepository) CountStockEntries(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.StockEntry{}).Where("product_id = ?", productID).Count(&count).Error
	if err != nil {
		return 0, internalErr(fmt.Sprintf("failed to count stock entries for product %d", productID), err)
	}
	return count, nil
}

func (r *GormStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error) {
	m := mapping.ToModelStockEntry(entry)
	m.EntryID = 0
	if err := models.Validate(m); err != nil {
		return nil, err
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.QuantityDelta < 0 {
			stock, err := sumStock(tx, m.ProductID)
			if err != nil {
				return internalErr(fmt.Sprintf("failed to sum stock for product %d", m.ProductID), err)
			}
			if stock+m.QuantityDelta < 0 {
				return fmt.Errorf("%w: product %d has %d, cannot remove %d", apperrors.ErrOutOfStock, m.ProductID, stock, -m.QuantityDelta)
			}
		}
		if err := tx.Create(&m).Error; err != nil {
			return internalErr("failed to insert stock entry", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saved := mapping.ToDomainStockEntry(m)
	return &saved, nil
}

func (r *GormStockRepository) ListStockEntries(ctx context.Context, filter string, limit int, nextToken *string) ([]domain.StockEntry, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	// Deleted products stay joinable so history keeps their names
	q := r.DB.WithContext(ctx).
		Table("stock_entries AS se").
		Select("se.*, p.name AS product_name").
		Joins("LEFT JOIN products p ON p.product_id = se.product_id")

	if filter != "" {
		pattern := containsPattern(filter)
		// Serials are matched per element, the JSON column text escapes some characters
		q = q.Where(`(p.name LIKE ? ESCAPE '\'`+
			` OR EXISTS (SELECT 1 FROM json_each(se.serials) AS j WHERE j.value LIKE ? ESCAPE '\')`+
			` OR se.entry_date LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern)
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		}
		lastDate = lastDate.UTC()
		q = q.Where("(se.entry_date < ? OR (se.entry_date = ? AND se.entry_id < ?))", lastDate, lastDate, lastID)
	}

	var rows []models.StockEntry
	if err := q.Order("se.entry_date DESC, se.entry_id DESC").Limit(fetchLimit).Find(&rows).Error; err != nil {
		return nil, nil, internalErr("failed to list stock entries", err)
	}

	var nextTokenVal *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.EntryID)
		nextTokenVal = &token
	}

	return mapping.ToDomainStockEntrySlice(rows), nextTokenVal, nil
}

// sumStock derives stock from the ledger using db, which may be a transaction.
func sumStock(db *gorm.DB, productID int64) (int64, error) {
	var stock int64
	err := db.Model(&models.StockEntry{}).
		Select("COALESCE(SUM(quantity_delta), 0)").
		Where("product_id = ?", productID).
		Scan(&stock).Error
	return stock, err
}
