package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const itemsSummarySeparator = ", "

// SaleRecord is one entry of the sales journal. It is append-only and holds
// snapshots, never live references to catalog products.
type SaleRecord struct {
	SaleID         int64           `json:"saleID"`
	Timestamp      time.Time       `json:"timestamp"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // Tax inclusive
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	PaymentMethod  string          `json:"paymentMethod"`
	ItemsSummary   string          `json:"itemsSummary"`
	CreatedBy      string          `json:"createdBy"`
}

// SummarizeItems renders line names into the human-readable journal summary.
func SummarizeItems(names []string) string {
	return strings.Join(names, itemsSummarySeparator)
}

// NetAmount is the total without tax.
func (s SaleRecord) NetAmount() decimal.Decimal {
	return s.TotalAmount.Sub(s.TaxAmount)
}
