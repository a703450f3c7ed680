package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
)

const defaultHistoryPageSize = 50

var ErrSaleEntryNotAllowed = errors.New("sale entries are recorded by checkout only")

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	productRepo portsrepo.ProductReader
	stockRepo   portsrepo.StockRepositoryFacade
}

// NewLedgerService creates a new stock ledger service.
func NewLedgerService(productRepo portsrepo.ProductReader, stockRepo portsrepo.StockRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	stock, err := s.stockRepo.SumStockByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive stock", slog.Int64("product_id", productID))
		return 0, fmt.Errorf("failed to derive stock: %w", err)
	}
	return stock, nil
}

func (s *ledgerService) AppendEntry(ctx context.Context, entry domain.StockEntry, operatorID string) (*domain.StockEntry, error) {
	if entry.Reason == "" {
		entry.Reason = domain.ReasonIncoming
		if entry.QuantityDelta < 0 {
			entry.Reason = domain.ReasonCorrection
		}
	}
	if entry.Reason == domain.ReasonSale {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSaleEntryNotAllowed)
	}

	product, err := s.productRepo.FindProductByID(ctx, entry.ProductID)
	if err != nil {
		return nil, err
	}

	serials := make([]string, 0, len(entry.Serials))
	for _, serial := range entry.Serials {
		serials = append(serials, strings.TrimSpace(serial))
	}
	entry.Serials = serials

	if err := entry.Validate(*product); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	now := s.Now()
	if entry.EntryDate.IsZero() {
		entry.EntryDate = now
	}
	entry.EntryID = 0
	entry.SaleID = nil
	entry.CreatedAt = now
	entry.CreatedBy = operatorID

	saved, err := s.stockRepo.SaveStockEntry(ctx, entry)
	if err != nil {
		if !errors.Is(err, apperrors.ErrOutOfStock) {
			s.LogError(ctx, err, "Failed to append stock entry", slog.Int64("product_id", entry.ProductID))
		}
		return nil, err
	}
	saved.ProductName = product.Name

	s.LogInfo(ctx, "Stock entry appended",
		slog.Int64("entry_id", saved.EntryID),
		slog.Int64("product_id", saved.ProductID),
		slog.Int64("quantity_delta", saved.QuantityDelta),
		slog.String("reason", string(saved.Reason)))
	return saved, nil
}

func (s *ledgerService) History(ctx context.Context, params dto.ListStockEntriesParams) (*dto.ListStockEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryPageSize
	}

	entries, nextToken, err := s.stockRepo.ListStockEntries(ctx, strings.TrimSpace(params.Filter), limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list stock entries")
		}
		return nil, fmt.Errorf("failed to list stock entries: %w", err)
	}

	return &dto.ListStockEntriesResponse{
		Entries:   dto.ToStockEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
