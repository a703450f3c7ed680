package models

import (
	"time"
)

// StockEntry is one immutable ledger row.
type StockEntry struct {
	EntryID       int64     `gorm:"column:entry_id;primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"column:product_id;not null;index" validate:"required,gt=0"`
	QuantityDelta int64     `gorm:"column:quantity_delta;not null" validate:"ne=0"`
	Serials       []string  `gorm:"column:serials;type:text;serializer:json" validate:"dive,required,max=128"`
	EntryDate     time.Time `gorm:"column:entry_date;not null;index"`
	Reason        string    `gorm:"column:reason;not null" validate:"oneof=INCOMING SALE CORRECTION"`
	SaleID        *int64    `gorm:"column:sale_id;index"`
	Note          string    `gorm:"column:note" validate:"max=255"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	CreatedBy     string    `gorm:"column:created_by;not null" validate:"max=64"`

	// Read projection, filled by joins only
	ProductName string `gorm:"->;column:product_name;-:migration"`
}

func (StockEntry) TableName() string { return "stock_entries" }

// StockLevel is the per-product aggregate of the ledger.
type StockLevel struct {
	ProductID int64 `gorm:"column:product_id"`
	Stock     int64 `gorm:"column:stock"`
}
