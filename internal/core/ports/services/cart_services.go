package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// CartSvc adds lines to a cart after checking derived stock.
type CartSvc interface {
	// AddToCart appends one line for the product with its current price.
	// Fails with apperrors.ErrOutOfStock when the lines already in the cart
	// use up the product's stock.
	AddToCart(ctx context.Context, cart *domain.Cart, productID int64) (*domain.CartLine, error)
}

// CartSessionSvc keeps the open carts of the presentation layer.
// Returned carts are snapshots; mutations go through the session methods.
type CartSessionSvc interface {
	OpenCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, productID int64) (*domain.Cart, error)
	DiscardCart(ctx context.Context, cartID string) error

	// CheckoutCart runs the checkout engine on the session's cart and
	// destroys the session once the sale is committed.
	CheckoutCart(ctx context.Context, cartID string, paymentMethod string, operatorID string) (*domain.Receipt, error)
}
