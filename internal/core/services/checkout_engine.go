package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/utils/tax"
	"github.com/shopspring/decimal"
)

const defaultCurrencyPrecision int32 = 2

// DefaultFallbackTaxRate applies when the configured shop rate cannot be parsed.
var DefaultFallbackTaxRate = decimal.NewFromInt(19)

// checkoutEngine implements the CheckoutSvc interface
type checkoutEngine struct {
	BaseService
	committer    portsrepo.CheckoutCommitter
	settings     portssvc.SettingsProvider
	fallbackRate decimal.Decimal
	precision    int32
}

// CheckoutOption is a functional option for configuring the checkout engine
type CheckoutOption func(*checkoutEngine)

// WithFallbackTaxRate sets the rate used when the shop rate is missing or malformed.
func WithFallbackTaxRate(rate decimal.Decimal) CheckoutOption {
	return func(e *checkoutEngine) {
		e.fallbackRate = rate
	}
}

// WithCurrencyPrecision sets the number of decimal places tax is rounded to.
func WithCurrencyPrecision(precision int32) CheckoutOption {
	return func(e *checkoutEngine) {
		e.precision = precision
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) CheckoutOption {
	return func(e *checkoutEngine) {
		e.Clock = clock
	}
}

// NewCheckoutEngine creates a new checkout engine with the provided options
func NewCheckoutEngine(committer portsrepo.CheckoutCommitter, settings portssvc.SettingsProvider, options ...CheckoutOption) portssvc.CheckoutSvc {
	engine := &checkoutEngine{
		committer:    committer,
		settings:     settings,
		fallbackRate: DefaultFallbackTaxRate,
		precision:    defaultCurrencyPrecision,
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

var _ portssvc.CheckoutSvc = (*checkoutEngine)(nil)

func (e *checkoutEngine) Checkout(ctx context.Context, cart *domain.Cart, paymentMethod string, operatorID string) (*domain.Receipt, error) {
	state := domain.CheckoutIdle

	if cart == nil || cart.IsEmpty() {
		return nil, e.abort(ctx, &state, apperrors.ErrEmptyCart)
	}

	settings, err := e.settings.ShopSettings(ctx)
	if err != nil {
		e.LogError(ctx, err, "Failed to load shop settings")
		return nil, e.abort(ctx, &state, fmt.Errorf("failed to load shop settings: %w", err))
	}

	total := cart.Total()
	rate, rateErr := tax.ResolveRate(settings.TaxRate, e.fallbackRate)
	if rateErr != nil {
		e.LogWarn(ctx, "Shop tax rate unusable, using fallback",
			slog.String("raw_rate", settings.TaxRate),
			slog.String("fallback_rate", e.fallbackRate.String()),
			slog.String("error", rateErr.Error()))
	}
	taxAmount := tax.ExtractInclusive(total, rate, e.precision)
	if err := state.Advance(domain.CheckoutPriced); err != nil {
		return nil, err
	}

	method, ok := settings.AcceptsPaymentMethod(paymentMethod)
	if !ok {
		return nil, e.abort(ctx, &state, fmt.Errorf("%w: %q", apperrors.ErrInvalidPaymentMethod, paymentMethod))
	}

	// Snapshot the lines; the receipt must not follow later cart changes
	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	now := e.Now()
	sale := domain.SaleRecord{
		Timestamp:      now,
		TotalAmount:    total,
		TaxAmount:      taxAmount,
		TaxRatePercent: rate,
		PaymentMethod:  method,
		ItemsSummary:   domain.SummarizeItems(cart.Names()),
		CreatedBy:      operatorID,
	}
	entries := make([]domain.StockEntry, len(lines))
	for i, line := range lines {
		entries[i] = domain.StockEntry{
			ProductID:     line.ProductID,
			ProductName:   line.Name,
			QuantityDelta: -1,
			Serials:       []string{},
			EntryDate:     now,
			Reason:        domain.ReasonSale,
			CreatedAt:     now,
			CreatedBy:     operatorID,
		}
	}

	saved, _, err := e.committer.CommitCheckout(ctx, sale, entries)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStockChanged) {
			e.LogError(ctx, err, "Checkout commit failed", slog.String("cart_id", cart.CartID))
		}
		return nil, e.abort(ctx, &state, err)
	}
	if err := state.Advance(domain.CheckoutCommitted); err != nil {
		return nil, err
	}

	receipt := domain.NewReceipt(settings.Shop, *saved, lines)
	e.LogInfo(ctx, "Checkout committed",
		slog.Int64("sale_id", saved.SaleID),
		slog.String("cart_id", cart.CartID),
		slog.Int("lines", len(lines)),
		slog.String("total", saved.TotalAmount.String()),
		slog.String("payment_method", saved.PaymentMethod))
	return &receipt, nil
}

// abort moves the attempt to ABORTED and returns cause unchanged.
func (e *checkoutEngine) abort(ctx context.Context, state *domain.CheckoutState, cause error) error {
	from := *state
	if err := state.Advance(domain.CheckoutAborted); err != nil {
		return errors.Join(cause, err)
	}
	e.LogDebug(ctx, "Checkout aborted",
		slog.String("from_state", string(from)),
		slog.String("reason", cause.Error()))
	return cause
}
