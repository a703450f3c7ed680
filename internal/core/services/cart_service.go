package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
)

// cartService implements the CartSvc interface
type cartService struct {
	BaseService
	productRepo portsrepo.ProductReader
	stockRepo   portsrepo.StockReader
}

// NewCartService creates a new cart service.
func NewCartService(productRepo portsrepo.ProductReader, stockRepo portsrepo.StockReader) portssvc.CartSvc {
	return &cartService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

var _ portssvc.CartSvc = (*cartService)(nil)

func (s *cartService) AddToCart(ctx context.Context, cart *domain.Cart, productID int64) (*domain.CartLine, error) {
	if cart == nil {
		return nil, fmt.Errorf("%w: cart is required", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load product for cart", slog.Int64("product_id", productID))
		}
		return nil, err
	}

	stock, err := s.stockRepo.SumStockByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive stock for cart", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to add product to cart: %w", err)
	}

	// Lines already in this cart are reserved against the same stock
	if stock-cart.QuantityOf(productID) <= 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOutOfStock, product.Name)
	}

	line := cart.AddLine(*product, s.Now())
	s.LogDebug(ctx, "Line added to cart",
		slog.String("cart_id", cart.CartID),
		slog.Int64("product_id", productID),
		slog.String("unit_price", line.UnitPrice.String()))
	return &line, nil
}
