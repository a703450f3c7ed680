package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the persisted catalog record. Deleted rows keep their ID and
// remain joinable from the ledger.
type Product struct {
	ProductID       int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name            string          `gorm:"column:name;not null" validate:"required,max=200"`
	Price           decimal.Decimal `gorm:"column:price;type:text;not null" validate:"gte=0"` // Text keeps SQLite from coercing to float
	RequiresSerials bool            `gorm:"column:requires_serials;not null;default:false"`
	ArticleNumber   string          `gorm:"column:article_number" validate:"max=64"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index"`
	AuditFields
}

func (Product) TableName() string { return "products" }
