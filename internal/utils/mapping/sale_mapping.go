package mapping

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/models"
)

// ToModelSale converts a domain SaleRecord to a model Sale
func ToModelSale(d domain.SaleRecord) models.Sale {
	return models.Sale{
		SaleID:         d.SaleID,
		Timestamp:      d.Timestamp.UTC(),
		TotalAmount:    d.TotalAmount,
		TaxAmount:      d.TaxAmount,
		TaxRatePercent: d.TaxRatePercent,
		PaymentMethod:  d.PaymentMethod,
		ItemsSummary:   d.ItemsSummary,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainSale converts a model Sale to a domain SaleRecord
func ToDomainSale(m models.Sale) domain.SaleRecord {
	return domain.SaleRecord{
		SaleID:         m.SaleID,
		Timestamp:      m.Timestamp,
		TotalAmount:    m.TotalAmount,
		TaxAmount:      m.TaxAmount,
		TaxRatePercent: m.TaxRatePercent,
		PaymentMethod:  m.PaymentMethod,
		ItemsSummary:   m.ItemsSummary,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainSaleSlice converts a slice of model Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.SaleRecord {
	sales := make([]domain.SaleRecord, len(ms))
	for i, m := range ms {
		sales[i] = ToDomainSale(m)
	}
	return sales
}
