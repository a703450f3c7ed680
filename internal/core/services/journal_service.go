package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/reporting"
)

var (
	ErrInvalidRange   = errors.New("range start is after range end")
	ErrSaleAmounts    = errors.New("sale amounts must be non-negative and tax must not exceed the total")
	ErrSalePaymentGap = errors.New("sale payment method is required")
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	salesRepo portsrepo.SalesRepositoryFacade
	settings  portssvc.SettingsProvider
	precision int32
}

// NewJournalService creates a new sales journal service.
func NewJournalService(salesRepo portsrepo.SalesRepositoryFacade, settings portssvc.SettingsProvider, precision int32) portssvc.JournalSvcFacade {
	return &journalService{
		salesRepo: salesRepo,
		settings:  settings,
		precision: precision,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) RecordSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error) {
	if sale.TotalAmount.IsNegative() || sale.TaxAmount.IsNegative() || sale.TaxAmount.GreaterThan(sale.TotalAmount) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSaleAmounts)
	}
	if strings.TrimSpace(sale.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSalePaymentGap)
	}
	if sale.Timestamp.IsZero() {
		sale.Timestamp = s.Now()
	}
	sale.SaleID = 0

	saved, err := s.salesRepo.SaveSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to record sale")
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	s.LogInfo(ctx, "Sale recorded", slog.Int64("sale_id", saved.SaleID))
	return saved, nil
}

func (s *journalService) GetSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error) {
	sale, err := s.salesRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.Int64("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

func (s *journalService) QuerySales(ctx context.Context, params dto.ListSalesParams) ([]domain.SaleRecord, error) {
	from, to, err := dayRange(params)
	if err != nil {
		return nil, err
	}

	sales, err := s.salesRepo.ListSales(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.SaleRecord{}, nil
	}
	return sales, nil
}

func (s *journalService) ExportSales(ctx context.Context, params dto.ListSalesParams, w io.Writer) error {
	sales, err := s.QuerySales(ctx, params)
	if err != nil {
		return err
	}
	settings, err := s.settings.ShopSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shop settings for export")
		return fmt.Errorf("failed to export sales: %w", err)
	}

	workbook := reporting.SalesWorkbook{Shop: settings.Shop, Precision: s.precision, Location: time.Local}
	if err := workbook.Write(w, sales); err != nil {
		s.LogError(ctx, err, "Failed to render sales workbook")
		return fmt.Errorf("failed to export sales: %w", err)
	}
	s.LogInfo(ctx, "Sales exported", slog.Int("count", len(sales)))
	return nil
}

// dayRange turns inclusive calendar days into a half-open [from, to) interval.
func dayRange(params dto.ListSalesParams) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if params.From != nil {
		start := startOfDay(*params.From)
		from = &start
	}
	if params.To != nil {
		end := startOfDay(*params.To).AddDate(0, 0, 1)
		to = &end
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidRange)
	}
	return from, to, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
