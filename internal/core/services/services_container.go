package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
	"github.com/SscSPs/pos_ledger_app/internal/utils/tax"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	container.Settings = NewSettingsProviderFromConfig(cfg)
	container.Auth = NewAuthService(cfg)
	container.Catalog = NewCatalogService(repos.ProductRepo, repos.StockRepo)
	container.Ledger = NewLedgerService(repos.ProductRepo, repos.StockRepo)
	container.Cart = NewCartService(repos.ProductRepo, repos.StockRepo)
	container.Journal = NewJournalService(repos.SalesRepo, container.Settings, cfg.CurrencyPrecision)

	fallbackRate, err := tax.ResolveRate(cfg.DefaultTaxRate, DefaultFallbackTaxRate)
	if err != nil {
		slog.Warn("Invalid DEFAULT_TAX_RATE, using built-in fallback",
			slog.String("raw_rate", cfg.DefaultTaxRate),
			slog.String("fallback_rate", fallbackRate.String()))
	}
	container.Checkout = NewCheckoutEngine(repos.CheckoutRepo, container.Settings,
		WithFallbackTaxRate(fallbackRate),
		WithCurrencyPrecision(cfg.CurrencyPrecision),
	)

	container.Carts, err = NewCartSessionService(cfg.CartSessionCapacity, container.Cart, container.Checkout)
	if err != nil {
		return nil, err
	}

	return container, nil
}
