package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/pos_ledger_app/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	base  time.Time
}

func (s *StoreTestSuite) SetupTest() {
	db, err := database.NewSQLiteDB(":memory:", false)
	s.Require().NoError(err)
	s.Require().NoError(sqlite.Migrate(db))
	s.T().Cleanup(func() { database.CloseSQLiteDB(db) })

	s.ctx = context.Background()
	s.repos = sqlite.NewRepositoryProvider(db)
	s.base = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) createProduct(name, price string, requiresSerials bool) *domain.Product {
	p, err := s.repos.ProductRepo.SaveProduct(s.ctx, domain.Product{
		Name:            name,
		Price:           decimal.RequireFromString(price),
		RequiresSerials: requiresSerials,
		AuditFields:     domain.AuditFields{CreatedAt: s.base, CreatedBy: "test", LastUpdatedAt: s.base, LastUpdatedBy: "test"},
	})
	s.Require().NoError(err)
	return p
}

func (s *StoreTestSuite) appendEntry(productID, delta int64, at time.Time, serials ...string) *domain.StockEntry {
	reason := domain.ReasonIncoming
	if delta < 0 {
		reason = domain.ReasonCorrection
	}
	e, err := s.repos.StockRepo.SaveStockEntry(s.ctx, domain.StockEntry{
		ProductID:     productID,
		QuantityDelta: delta,
		Serials:       serials,
		EntryDate:     at,
		Reason:        reason,
		CreatedAt:     at,
		CreatedBy:     "test",
	})
	s.Require().NoError(err)
	return e
}

// --- Products ---

func (s *StoreTestSuite) TestProduct_SaveFindList() {
	kaffee := s.createProduct("Kaffee", "2.50", false)
	s.createProduct("Cola", "3.00", false)
	s.NotZero(kaffee.ProductID)

	found, err := s.repos.ProductRepo.FindProductByID(s.ctx, kaffee.ProductID)
	s.Require().NoError(err)
	s.Equal("Kaffee", found.Name)
	s.True(decimal.RequireFromString("2.5").Equal(found.Price))

	list, err := s.repos.ProductRepo.ListProducts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Cola", list[0].Name)

	_, err = s.repos.ProductRepo.FindProductByID(s.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestProduct_RejectsInvalidRecord() {
	_, err := s.repos.ProductRepo.SaveProduct(s.ctx, domain.Product{Name: "Kuchen", Price: decimal.NewFromInt(-1)})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestProduct_Update() {
	p := s.createProduct("Kuchen", "4.00", false)
	p.Price = decimal.RequireFromString("4.20")
	p.LastUpdatedBy = "anna"
	s.Require().NoError(s.repos.ProductRepo.UpdateProduct(s.ctx, *p))

	found, err := s.repos.ProductRepo.FindProductByID(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal("4.2", found.Price.String())
	s.Equal("anna", found.LastUpdatedBy)

	p.ProductID = 9999
	s.ErrorIs(s.repos.ProductRepo.UpdateProduct(s.ctx, *p), apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestProduct_DeleteKeepsLedger() {
	p := s.createProduct("Kaffee", "2.50", false)
	s.appendEntry(p.ProductID, 5, s.base)

	s.Require().NoError(s.repos.ProductRepo.DeleteProduct(s.ctx, p.ProductID, "anna", s.base.Add(time.Hour)))

	_, err := s.repos.ProductRepo.FindProductByID(s.ctx, p.ProductID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repos.ProductRepo.DeleteProduct(s.ctx, p.ProductID, "anna", s.base), apperrors.ErrNotFound)

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(5), stock)

	entries, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "", 10, nil)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Kaffee", entries[0].ProductName)

	// A new product never reuses the deleted ID
	next := s.createProduct("Tee", "2.00", false)
	s.NotEqual(p.ProductID, next.ProductID)
}

// --- Ledger ---

func (s *StoreTestSuite) TestStock_SumOfDeltas() {
	p := s.createProduct("Cola", "3.00", false)
	other := s.createProduct("Kaffee", "2.50", false)

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Zero(stock)

	deltas := []int64{10, -3, 4, -1, -5, 2}
	var want int64
	for i, d := range deltas {
		s.appendEntry(p.ProductID, d, s.base.Add(time.Duration(i)*time.Minute))
		want += d
	}
	s.appendEntry(other.ProductID, 100, s.base)

	stock, err = s.repos.StockRepo.SumStockByProduct(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(want, stock)

	count, err := s.repos.StockRepo.CountStockEntries(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(len(deltas)), count)
}

func (s *StoreTestSuite) TestStock_IncomingThenCorrection() {
	p := s.createProduct("Kuchen", "4.00", false)
	s.appendEntry(p.ProductID, 5, s.base)
	s.appendEntry(p.ProductID, -2, s.base.Add(time.Minute))

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(3), stock)
}

func (s *StoreTestSuite) TestStock_NegativeBelowZeroRejected() {
	p := s.createProduct("Kuchen", "4.00", false)
	s.appendEntry(p.ProductID, 1, s.base)

	_, err := s.repos.StockRepo.SaveStockEntry(s.ctx, domain.StockEntry{
		ProductID: p.ProductID, QuantityDelta: -2, EntryDate: s.base, Reason: domain.ReasonCorrection, CreatedAt: s.base,
	})
	s.ErrorIs(err, apperrors.ErrOutOfStock)

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, p.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(1), stock)
}

func (s *StoreTestSuite) TestStock_SerialsRoundTrip() {
	p := s.createProduct("Handy", "199.00", true)
	e := s.appendEntry(p.ProductID, 2, s.base, "SN-001", "SN-002")
	s.NotZero(e.EntryID)

	entries, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "", 10, nil)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal([]string{"SN-001", "SN-002"}, entries[0].Serials)
	s.Equal(domain.ReasonIncoming, entries[0].Reason)
}

func (s *StoreTestSuite) TestHistory_NewestFirstAndFilter() {
	kaffee := s.createProduct("Kaffee", "2.50", false)
	handy := s.createProduct("Handy", "199.00", true)
	s.appendEntry(kaffee.ProductID, 10, s.base)
	s.appendEntry(handy.ProductID, 1, s.base.Add(time.Hour), "IMEI-4711")
	s.appendEntry(kaffee.ProductID, -1, s.base.AddDate(0, 0, 1))

	entries, next, err := s.repos.StockRepo.ListStockEntries(s.ctx, "", 10, nil)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(entries, 3)
	s.Equal(int64(-1), entries[0].QuantityDelta)
	s.Equal("Handy", entries[1].ProductName)
	s.Equal(int64(10), entries[2].QuantityDelta)

	byName, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "kaff", 10, nil)
	s.Require().NoError(err)
	s.Len(byName, 2)

	bySerial, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "4711", 10, nil)
	s.Require().NoError(err)
	s.Require().Len(bySerial, 1)
	s.Equal(handy.ProductID, bySerial[0].ProductID)

	byDate, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "2024-03-16", 10, nil)
	s.Require().NoError(err)
	s.Require().Len(byDate, 1)
	s.Equal(int64(-1), byDate[0].QuantityDelta)

	wildcard, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "%", 10, nil)
	s.Require().NoError(err)
	s.Empty(wildcard)
}

func (s *StoreTestSuite) TestHistory_FilterMatchesSerialsWithSpecialCharacters() {
	handy := s.createProduct("Handy", "199.00", true)
	kabel := s.createProduct("Kabel", "4.00", false)
	s.appendEntry(handy.ProductID, 3, s.base, "A&B<1>", `SN"7\x`, "100%_OK")
	s.appendEntry(kabel.ProductID, 5, s.base.Add(time.Minute))

	for _, filter := range []string{"A&B<1>", "&B<", `SN"7\x`, "100%_OK", "%_O"} {
		entries, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, filter, 10, nil)
		s.Require().NoError(err, filter)
		s.Require().Len(entries, 1, filter)
		s.Equal(handy.ProductID, entries[0].ProductID, filter)
	}

	// Only serial values match, not the surrounding JSON syntax
	quoted, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, `","`, 10, nil)
	s.Require().NoError(err)
	s.Empty(quoted)
}

func (s *StoreTestSuite) TestHistory_Pagination() {
	p := s.createProduct("Cola", "3.00", false)
	for i := 0; i < 5; i++ {
		// Two entries share each timestamp so the ID tie-break is exercised
		s.appendEntry(p.ProductID, int64(i+1), s.base.Add(time.Duration(i/2)*time.Minute))
	}

	var seen []int64
	var token *string
	for page := 0; page < 5; page++ {
		entries, next, err := s.repos.StockRepo.ListStockEntries(s.ctx, "", 2, token)
		s.Require().NoError(err)
		for _, e := range entries {
			seen = append(seen, e.QuantityDelta)
		}
		if next == nil {
			break
		}
		token = next
	}
	s.Equal([]int64{5, 4, 3, 2, 1}, seen)

	bad := "not a token"
	_, _, err := s.repos.StockRepo.ListStockEntries(s.ctx, "", 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- Sales journal ---

func (s *StoreTestSuite) TestSales_SaveFindList() {
	for i := 0; i < 3; i++ {
		_, err := s.repos.SalesRepo.SaveSale(s.ctx, domain.SaleRecord{
			Timestamp:      s.base.AddDate(0, 0, i),
			TotalAmount:    decimal.NewFromInt(int64(10 + i)),
			TaxAmount:      decimal.RequireFromString("1.60"),
			TaxRatePercent: decimal.NewFromInt(19),
			PaymentMethod:  "CASH",
			ItemsSummary:   fmt.Sprintf("Sale %d", i),
		})
		s.Require().NoError(err)
	}

	all, err := s.repos.SalesRepo.ListSales(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Sale 0", all[0].ItemsSummary)
	s.Equal("1.6", all[0].TaxAmount.String())

	from := s.base.AddDate(0, 0, 1)
	to := s.base.AddDate(0, 0, 2)
	ranged, err := s.repos.SalesRepo.ListSales(s.ctx, &from, &to)
	s.Require().NoError(err)
	s.Require().Len(ranged, 1)
	s.Equal("Sale 1", ranged[0].ItemsSummary)

	found, err := s.repos.SalesRepo.FindSaleByID(s.ctx, all[2].SaleID)
	s.Require().NoError(err)
	s.Equal("12", found.TotalAmount.String())

	_, err = s.repos.SalesRepo.FindSaleByID(s.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Checkout commit ---

func (s *StoreTestSuite) saleFor(total string) domain.SaleRecord {
	return domain.SaleRecord{
		Timestamp:      s.base,
		TotalAmount:    decimal.RequireFromString(total),
		TaxAmount:      decimal.Zero,
		TaxRatePercent: decimal.Zero,
		PaymentMethod:  "CARD",
		ItemsSummary:   "test",
	}
}

func saleEntries(at time.Time, productIDs ...int64) []domain.StockEntry {
	entries := make([]domain.StockEntry, len(productIDs))
	for i, id := range productIDs {
		entries[i] = domain.StockEntry{ProductID: id, QuantityDelta: -1, EntryDate: at, Reason: domain.ReasonSale, CreatedAt: at}
	}
	return entries
}

func (s *StoreTestSuite) TestCommitCheckout_Success() {
	kaffee := s.createProduct("Kaffee", "2.50", false)
	kuchen := s.createProduct("Kuchen", "4.00", false)
	s.appendEntry(kaffee.ProductID, 2, s.base)
	s.appendEntry(kuchen.ProductID, 1, s.base)

	sale, entries, err := s.repos.CheckoutRepo.CommitCheckout(s.ctx, s.saleFor("9.00"),
		saleEntries(s.base, kaffee.ProductID, kaffee.ProductID, kuchen.ProductID))
	s.Require().NoError(err)
	s.NotZero(sale.SaleID)
	s.Require().Len(entries, 3)
	for _, e := range entries {
		s.NotZero(e.EntryID)
		s.Require().NotNil(e.SaleID)
		s.Equal(sale.SaleID, *e.SaleID)
		s.Empty(e.Serials)
	}

	for _, id := range []int64{kaffee.ProductID, kuchen.ProductID} {
		stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, id)
		s.Require().NoError(err)
		s.Zero(stock)
	}
}

func (s *StoreTestSuite) TestCommitCheckout_StockChangedPersistsNothing() {
	kaffee := s.createProduct("Kaffee", "2.50", false)
	kuchen := s.createProduct("Kuchen", "4.00", false)
	s.appendEntry(kaffee.ProductID, 1, s.base)
	s.appendEntry(kuchen.ProductID, 5, s.base)

	// Two Kaffee lines against one unit: the whole commit must fail
	_, _, err := s.repos.CheckoutRepo.CommitCheckout(s.ctx, s.saleFor("9.00"),
		saleEntries(s.base, kuchen.ProductID, kaffee.ProductID, kaffee.ProductID))
	s.ErrorIs(err, apperrors.ErrStockChanged)

	sales, err := s.repos.SalesRepo.ListSales(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Empty(sales)

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, kuchen.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(5), stock)
}

func (s *StoreTestSuite) TestCommitCheckout_ConcurrentLastUnit() {
	cola := s.createProduct("Cola", "3.00", false)
	s.appendEntry(cola.ProductID, 1, s.base)

	const attempts = 4
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.repos.CheckoutRepo.CommitCheckout(s.ctx, s.saleFor("3.00"), saleEntries(s.base, cola.ProductID))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var committed, changed int
	for err := range errs {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, apperrors.ErrStockChanged):
			changed++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, committed)
	s.Equal(attempts-1, changed)

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, cola.ProductID)
	s.Require().NoError(err)
	s.Zero(stock)
}

func (s *StoreTestSuite) TestCommitCheckout_LargeCart() {
	klammer := s.createProduct("Büroklammer", "0.01", false)
	s.appendEntry(klammer.ProductID, 5000, s.base)

	const lines = 4000
	productIDs := make([]int64, lines)
	for i := range productIDs {
		productIDs[i] = klammer.ProductID
	}

	sale, entries, err := s.repos.CheckoutRepo.CommitCheckout(s.ctx, s.saleFor("40.00"), saleEntries(s.base, productIDs...))
	s.Require().NoError(err)
	s.Require().Len(entries, lines)
	for _, e := range entries {
		s.NotZero(e.EntryID)
		s.Require().NotNil(e.SaleID)
		s.Equal(sale.SaleID, *e.SaleID)
	}

	stock, err := s.repos.StockRepo.SumStockByProduct(s.ctx, klammer.ProductID)
	s.Require().NoError(err)
	s.Equal(int64(1000), stock)
}
