package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name            string          `json:"name" binding:"required,max=200"`
	Price           decimal.Decimal `json:"price"` // Must be non-negative, checked by the service
	RequiresSerials bool            `json:"requiresSerials"`
	ArticleNumber   string          `json:"articleNumber" binding:"max=64"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=200"`
	Price           *decimal.Decimal `json:"price"`
	RequiresSerials *bool            `json:"requiresSerials"`
	ArticleNumber   *string          `json:"articleNumber" binding:"omitempty,max=64"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID       int64           `json:"productID"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	RequiresSerials bool            `json:"requiresSerials"`
	ArticleNumber   string          `json:"articleNumber"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ProductStockResponse reports the derived stock of one product.
type ProductStockResponse struct {
	ProductID    int64 `json:"productID"`
	CurrentStock int64 `json:"currentStock"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:       p.ProductID,
		Name:            p.Name,
		Price:           p.Price,
		RequiresSerials: p.RequiresSerials,
		ArticleNumber:   p.ArticleNumber,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
		LastUpdatedAt:   p.LastUpdatedAt,
		LastUpdatedBy:   p.LastUpdatedBy,
	}
}

// ToProductResponses converts a slice of domain.Product.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
