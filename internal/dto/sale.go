package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListSalesParams bounds a journal query. Dates are local calendar days; To is inclusive.
type ListSalesParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// SaleResponse defines the data returned for a journal entry.
type SaleResponse struct {
	SaleID         int64           `json:"saleID"`
	Timestamp      time.Time       `json:"timestamp"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	PaymentMethod  string          `json:"paymentMethod"`
	ItemsSummary   string          `json:"itemsSummary"`
	CreatedBy      string          `json:"createdBy"`
}

// ListSalesResponse wraps a journal query result.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain.SaleRecord to its DTO.
func ToSaleResponse(s *domain.SaleRecord) SaleResponse {
	return SaleResponse{
		SaleID:         s.SaleID,
		Timestamp:      s.Timestamp,
		TotalAmount:    s.TotalAmount,
		TaxAmount:      s.TaxAmount,
		TaxRatePercent: s.TaxRatePercent,
		NetAmount:      s.NetAmount(),
		PaymentMethod:  s.PaymentMethod,
		ItemsSummary:   s.ItemsSummary,
		CreatedBy:      s.CreatedBy,
	}
}

// ToListSalesResponse converts a slice of domain.SaleRecord.
func ToListSalesResponse(sales []domain.SaleRecord) ListSalesResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return ListSalesResponse{Sales: responses}
}
