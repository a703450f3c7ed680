package reporting

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	JournalSheet = "Journal"
	SummarySheet = "Summary"

	timestampLayout = "2006-01-02 15:04:05"
)

var journalHeader = []any{"Sale ID", "Timestamp", "Items", "Payment method", "Total", "Tax rate %", "Tax", "Net", "Operator"}

// SalesWorkbook holds what an export needs besides the sales themselves.
type SalesWorkbook struct {
	Shop      domain.ShopIdentity
	Precision int32
	Location  *time.Location // Timestamps are rendered in this zone, UTC when nil
}

// Write renders sales as an XLSX workbook: one row per sale on the journal
// sheet and per payment method totals on the summary sheet.
func (wb SalesWorkbook) Write(w io.Writer, sales []domain.SaleRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", JournalSheet); err != nil {
		return fmt.Errorf("failed to name journal sheet: %w", err)
	}
	if err := wb.writeJournal(f, sales); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := wb.writeSummary(f, sales); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (wb SalesWorkbook) writeJournal(f *excelize.File, sales []domain.SaleRecord) error {
	loc := wb.Location
	if loc == nil {
		loc = time.UTC
	}

	if err := f.SetSheetRow(JournalSheet, "A1", &journalHeader); err != nil {
		return fmt.Errorf("failed to write journal header: %w", err)
	}
	for i, sale := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			sale.SaleID,
			sale.Timestamp.In(loc).Format(timestampLayout),
			sale.ItemsSummary,
			sale.PaymentMethod,
			wb.amount(sale.TotalAmount),
			sale.TaxRatePercent.String(),
			wb.amount(sale.TaxAmount),
			wb.amount(sale.NetAmount()),
			sale.CreatedBy,
		}
		if err := f.SetSheetRow(JournalSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sale %d: %w", sale.SaleID, err)
		}
	}
	return nil
}

func (wb SalesWorkbook) writeSummary(f *excelize.File, sales []domain.SaleRecord) error {
	type bucket struct {
		count        int
		total, taxes decimal.Decimal
	}
	byMethod := map[string]*bucket{}
	var grand bucket
	for _, sale := range sales {
		b, ok := byMethod[sale.PaymentMethod]
		if !ok {
			b = &bucket{}
			byMethod[sale.PaymentMethod] = b
		}
		b.count++
		b.total = b.total.Add(sale.TotalAmount)
		b.taxes = b.taxes.Add(sale.TaxAmount)
		grand.count++
		grand.total = grand.total.Add(sale.TotalAmount)
		grand.taxes = grand.taxes.Add(sale.TaxAmount)
	}

	methods := make([]string, 0, len(byMethod))
	for m := range byMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	rows := [][]any{
		{"Shop", wb.Shop.Name},
		{"Address", wb.Shop.Address},
		{"Tax ID", wb.Shop.TaxID},
		{},
		{"Payment method", "Sales", "Total", "Tax"},
	}
	for _, m := range methods {
		b := byMethod[m]
		rows = append(rows, []any{m, b.count, wb.amount(b.total), wb.amount(b.taxes)})
	}
	rows = append(rows, []any{"All", grand.count, wb.amount(grand.total), wb.amount(grand.taxes)})

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func (wb SalesWorkbook) amount(d decimal.Decimal) string {
	return utils.FormatAmount(d, wb.Precision)
}
