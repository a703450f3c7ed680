package sqlite

import (
	"fmt"

	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the store schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.StockEntry{}, &models.Sale{}); err != nil {
		return fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return nil
}

// NewRepositoryProvider wires every repository to the same gorm handle.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newGormProductRepository(db),
		StockRepo:    newGormStockRepository(db),
		SalesRepo:    newGormSalesRepository(db),
		CheckoutRepo: newGormCheckoutRepository(db),
	}
}
