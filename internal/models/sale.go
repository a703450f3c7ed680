package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one append-only row of the sales journal.
type Sale struct {
	SaleID         int64           `gorm:"column:sale_id;primaryKey;autoIncrement"`
	Timestamp      time.Time       `gorm:"column:sale_timestamp;not null;index"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:text;not null" validate:"gte=0"`
	TaxAmount      decimal.Decimal `gorm:"column:tax_amount;type:text;not null" validate:"gte=0"`
	TaxRatePercent decimal.Decimal `gorm:"column:tax_rate_percent;type:text;not null" validate:"gte=0"`
	PaymentMethod  string          `gorm:"column:payment_method;not null" validate:"required,max=32"`
	ItemsSummary   string          `gorm:"column:items_summary;not null"`
	CreatedBy      string          `gorm:"column:created_by;not null" validate:"max=64"`
}

func (Sale) TableName() string { return "sales" }
