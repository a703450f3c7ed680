package models_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Product(t *testing.T) {
	ok := models.Product{Name: "Kaffee", Price: decimal.RequireFromString("2.50")}
	assert.NoError(t, models.Validate(ok))

	free := models.Product{Name: "Wasser", Price: decimal.Zero}
	assert.NoError(t, models.Validate(free))

	negative := models.Product{Name: "Kaffee", Price: decimal.RequireFromString("-0.01")}
	assert.ErrorIs(t, models.Validate(negative), apperrors.ErrValidation)

	unnamed := models.Product{Price: decimal.NewFromInt(1)}
	assert.ErrorIs(t, models.Validate(unnamed), apperrors.ErrValidation)
}

func TestValidate_StockEntry(t *testing.T) {
	entry := models.StockEntry{ProductID: 1, QuantityDelta: 2, Serials: []string{"A", "B"}, EntryDate: time.Now(), Reason: "INCOMING"}
	assert.NoError(t, models.Validate(entry))

	zero := entry
	zero.QuantityDelta = 0
	assert.ErrorIs(t, models.Validate(zero), apperrors.ErrValidation)

	badReason := entry
	badReason.Reason = "THEFT"
	assert.ErrorIs(t, models.Validate(badReason), apperrors.ErrValidation)

	blankSerial := entry
	blankSerial.Serials = []string{"A", ""}
	assert.ErrorIs(t, models.Validate(blankSerial), apperrors.ErrValidation)
}

func TestValidate_Sale(t *testing.T) {
	sale := models.Sale{
		TotalAmount: decimal.NewFromInt(10), TaxAmount: decimal.RequireFromString("1.60"),
		TaxRatePercent: decimal.NewFromInt(19), PaymentMethod: "CASH",
	}
	assert.NoError(t, models.Validate(sale))

	noMethod := sale
	noMethod.PaymentMethod = ""
	assert.ErrorIs(t, models.Validate(noMethod), apperrors.ErrValidation)
}
