package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, productID, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepositoryFacade = (*MockStockRepository)(nil)

func (m *MockStockRepository) SumStockByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) CountStockEntries(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) ListStockEntries(ctx context.Context, filter string, limit int, nextToken *string) ([]domain.StockEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.StockEntry), returnedNextToken, args.Error(2)
}

func (m *MockStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) (*domain.StockEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

// --- Mock SalesRepository ---
type MockSalesRepository struct {
	mock.Mock
}

var _ portsrepo.SalesRepositoryFacade = (*MockSalesRepository)(nil)

func (m *MockSalesRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

func (m *MockSalesRepository) ListSales(ctx context.Context, from, to *time.Time) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSalesRepository) SaveSale(ctx context.Context, sale domain.SaleRecord) (*domain.SaleRecord, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleRecord), args.Error(1)
}

// --- Mock CheckoutCommitter ---
type MockCheckoutCommitter struct {
	mock.Mock
}

var _ portsrepo.CheckoutCommitter = (*MockCheckoutCommitter)(nil)

func (m *MockCheckoutCommitter) CommitCheckout(ctx context.Context, sale domain.SaleRecord, entries []domain.StockEntry) (*domain.SaleRecord, []domain.StockEntry, error) {
	args := m.Called(ctx, sale, entries)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var saved []domain.StockEntry
	if args.Get(1) != nil {
		saved = args.Get(1).([]domain.StockEntry)
	}
	return args.Get(0).(*domain.SaleRecord), saved, args.Error(2)
}

// --- Mock SettingsProvider ---
type MockSettingsProvider struct {
	mock.Mock
}

var _ portssvc.SettingsProvider = (*MockSettingsProvider)(nil)

func (m *MockSettingsProvider) ShopSettings(ctx context.Context) (domain.ShopSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ShopSettings), args.Error(1)
}

// --- Mock CartService ---
type MockCartService struct {
	mock.Mock
}

var _ portssvc.CartSvc = (*MockCartService)(nil)

func (m *MockCartService) AddToCart(ctx context.Context, cart *domain.Cart, productID int64) (*domain.CartLine, error) {
	args := m.Called(ctx, cart, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartLine), args.Error(1)
}

// --- Mock CheckoutService ---
type MockCheckoutService struct {
	mock.Mock
}

var _ portssvc.CheckoutSvc = (*MockCheckoutService)(nil)

func (m *MockCheckoutService) Checkout(ctx context.Context, cart *domain.Cart, paymentMethod string, operatorID string) (*domain.Receipt, error) {
	args := m.Called(ctx, cart, paymentMethod, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}
