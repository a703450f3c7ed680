package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"gorm.io/gorm"
)

// GormCheckoutRepository implements portsrepo.CheckoutCommitter on gorm.
// Atomicity relies on the SQLite transaction; the pool is limited to one
// connection and transactions begin IMMEDIATE, so two commits never interleave.
type GormCheckoutRepository struct {
	BaseRepository
}

func newGormCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{BaseRepository{DB: db}}
}

var _ portsrepo.CheckoutCommitter = (*GormCheckoutRepository)(nil)

// entryInsertBatchSize keeps one INSERT well below SQLite's bound variable limit.
const entryInsertBatchSize = 500

func (r *GormCheckoutRepository) CommitCheckout(ctx context.Context, sale domain.SaleRecord, entries []domain.StockEntry) (*domain.SaleRecord, []domain.StockEntry, error) {
	required, productIDs := domain.OutgoingUnits(entries)

	entryModels := make([]models.StockEntry, len(entries))
	for i, e := range entries {
		entryModels[i] = mapping.ToModelStockEntry(e)
		entryModels[i].EntryID = 0
	}

	var savedSale models.Sale
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Re-derive stock for every product in the cart
		var levels []models.StockLevel
		if len(productIDs) > 0 {
			err := tx.Model(&models.StockEntry{}).
				Select("product_id, COALESCE(SUM(quantity_delta), 0) AS stock").
				Where("product_id IN ?", productIDs).
				Group("product_id").
				Scan(&levels).Error
			if err != nil {
				return internalErr("failed to re-derive stock", err)
			}
		}
		stock := make(map[int64]int64, len(levels))
		for _, l := range levels {
			stock[l.ProductID] = l.Stock
		}
		var short []int64
		for _, id := range productIDs {
			if stock[id] < required[id] {
				short = append(short, id)
			}
		}
		if len(short) > 0 {
			return fmt.Errorf("%w: products %v", apperrors.ErrStockChanged, short)
		}

		// 2. Insert the journal record
		var err error
		savedSale, err = insertSale(tx, sale)
		if err != nil {
			return err
		}

		// 3. Append the sale entries linked to it
		if len(entryModels) == 0 {
			return nil
		}
		for i := range entryModels {
			entryModels[i].SaleID = &savedSale.SaleID
			if err := models.Validate(entryModels[i]); err != nil {
				return err
			}
		}
		if err := tx.CreateInBatches(&entryModels, entryInsertBatchSize).Error; err != nil {
			return internalErr("failed to insert sale stock entries", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	savedEntries := mapping.ToDomainStockEntrySlice(entryModels)
	for i := range savedEntries {
		savedEntries[i].ProductName = entries[i].ProductName
	}
	domainSale := mapping.ToDomainSale(savedSale)
	return &domainSale, savedEntries, nil
}
