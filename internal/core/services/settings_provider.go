package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
)

// staticSettingsProvider serves shop settings fixed at startup.
type staticSettingsProvider struct {
	settings domain.ShopSettings
}

// NewStaticSettingsProvider returns a provider that always serves settings.
func NewStaticSettingsProvider(settings domain.ShopSettings) portssvc.SettingsProvider {
	return &staticSettingsProvider{settings: settings}
}

// NewSettingsProviderFromConfig builds shop settings from the process configuration.
func NewSettingsProviderFromConfig(cfg *config.Config) portssvc.SettingsProvider {
	return NewStaticSettingsProvider(domain.ShopSettings{
		Shop: domain.ShopIdentity{
			Name:    cfg.ShopName,
			Address: cfg.ShopAddress,
			Phone:   cfg.ShopPhone,
			TaxID:   cfg.ShopTaxID,
		},
		TaxRate:        cfg.ShopTaxRate,
		PaymentMethods: cfg.PaymentMethods,
	})
}

var _ portssvc.SettingsProvider = (*staticSettingsProvider)(nil)

func (p *staticSettingsProvider) ShopSettings(_ context.Context) (domain.ShopSettings, error) {
	settings := p.settings
	settings.PaymentMethods = append([]string(nil), p.settings.PaymentMethods...)
	return settings, nil
}
