package mapping

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:       d.ProductID,
		Name:            d.Name,
		Price:           d.Price,
		RequiresSerials: d.RequiresSerials,
		ArticleNumber:   d.ArticleNumber,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:       m.ProductID,
		Name:            m.Name,
		Price:           m.Price,
		RequiresSerials: m.RequiresSerials,
		ArticleNumber:   m.ArticleNumber,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	products := make([]domain.Product, len(ms))
	for i, m := range ms {
		products[i] = ToDomainProduct(m)
	}
	return products
}
