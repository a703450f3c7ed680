package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReceipt_ItemsSummaryMatchesSale(t *testing.T) {
	now := time.Now().UTC()
	cart := domain.NewCart("c1", now)
	cart.AddLine(domain.Product{ProductID: 1, Name: "Kaffee", Price: decimal.RequireFromString("2.50")}, now)
	cart.AddLine(domain.Product{ProductID: 2, Name: "Kuchen", Price: decimal.RequireFromString("4.00")}, now)

	sale := domain.SaleRecord{
		SaleID:         42,
		Timestamp:      now,
		TotalAmount:    cart.Total(),
		TaxAmount:      decimal.RequireFromString("1.04"),
		TaxRatePercent: decimal.NewFromInt(19),
		PaymentMethod:  "CASH",
		ItemsSummary:   domain.SummarizeItems(cart.Names()),
	}
	receipt := domain.NewReceipt(domain.ShopIdentity{Name: "MC POS"}, sale, cart.Lines)

	assert.Equal(t, "Kaffee, Kuchen", receipt.ItemsSummary())
	assert.Equal(t, sale.ItemsSummary, receipt.ItemsSummary())
	assert.True(t, receipt.NetAmount.Equal(decimal.RequireFromString("5.46")))
	assert.Equal(t, int64(42), receipt.SaleID)
	assert.Len(t, receipt.Lines, 2)
}

func TestShopSettings_AcceptsPaymentMethod(t *testing.T) {
	settings := domain.ShopSettings{PaymentMethods: []string{"CASH", "CARD"}}

	method, ok := settings.AcceptsPaymentMethod("card")
	assert.True(t, ok)
	assert.Equal(t, "CARD", method)

	_, ok = settings.AcceptsPaymentMethod("VOUCHER")
	assert.False(t, ok)

	_, ok = settings.AcceptsPaymentMethod("   ")
	assert.False(t, ok)

	open := domain.ShopSettings{}
	method, ok = open.AcceptsPaymentMethod("voucher")
	assert.True(t, ok)
	assert.Equal(t, "VOUCHER", method)
}

func TestProduct_Validate(t *testing.T) {
	assert.NoError(t, domain.Product{Name: "Cola", Price: decimal.Zero}.Validate())
	assert.ErrorIs(t, domain.Product{Name: " ", Price: decimal.NewFromInt(1)}.Validate(), domain.ErrProductNameMissing)
	assert.ErrorIs(t, domain.Product{Name: "Cola", Price: decimal.NewFromInt(-1)}.Validate(), domain.ErrNegativePrice)
}
