package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// CheckoutSvc turns a cart into a committed sale.
type CheckoutSvc interface {
	// Checkout prices the cart, re-validates stock and, in one store transaction,
	// records one SALE ledger entry per line plus the journal record.
	// The cart is left untouched; the caller clears it after success.
	Checkout(ctx context.Context, cart *domain.Cart, paymentMethod string, operatorID string) (*domain.Receipt, error)
}

// SettingsProvider supplies shop identity, tax rate and payment methods.
type SettingsProvider interface {
	ShopSettings(ctx context.Context) (domain.ShopSettings, error)
}
