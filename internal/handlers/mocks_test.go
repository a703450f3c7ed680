package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

func (m *MockCatalogService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, operatorID string) (*domain.Product, error) {
	args := m.Called(ctx, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, operatorID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogService) DeleteProduct(ctx context.Context, productID int64, operatorID string) error {
	args := m.Called(ctx, productID, operatorID)
	return args.Error(0)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, params dto.ListStockEntriesParams) (*dto.ListStockEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListStockEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) AppendEntry(ctx context.Context, entry domain.StockEntry, operatorID string) (*domain.StockEntry, error) {
	args := m.Called(ctx, entry, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

// --- Mock CartSessionService ---
type MockCartSessionService struct {
	mock.Mock
}

var _ portssvc.CartSessionSvc = (*MockCartSessionService)(nil)

func (m *MockCartSessionService) OpenCart(ctx context.Context) (*domain.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartSessionService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartSessionService) AddLine(ctx context.Context, cartID string, productID int64) (*domain.Cart, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartSessionService) DiscardCart(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *MockCartSessionService) CheckoutCart(ctx context.Context, cartID string, paymentMethod string, operatorID string) (*domain.Receipt, error) {
	args := m.Called(ctx, cartID, paymentMethod, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) GetSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockJournalService) QuerySales(ctx context.Context, params dto.ListSalesParams) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockJournalService) RecordSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockJournalService) ExportSales(ctx context.Context, params dto.ListSalesParams, w io.Writer) error {
	args := m.Called(ctx, params, w)
	return args.Error(0)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
