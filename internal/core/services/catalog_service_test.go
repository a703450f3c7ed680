package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockProducts *MockProductRepository
	mockStock    *MockStockRepository
	service      portssvc.CatalogSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockProducts = new(MockProductRepository)
	suite.mockStock = new(MockStockRepository)
	suite.service = services.NewCatalogService(suite.mockProducts, suite.mockStock)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (suite *CatalogServiceTestSuite) existingProduct() *domain.Product {
	return &domain.Product{
		ProductID:     7,
		Name:          "Kaffee",
		Price:         decimal.RequireFromString("2.50"),
		ArticleNumber: "K-1",
		AuditFields:   domain.AuditFields{CreatedBy: "anna", LastUpdatedBy: "anna"},
	}
}

func (suite *CatalogServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "  Kaffee ", Price: decimal.RequireFromString("2.50")}

	suite.mockProducts.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Kaffee" && p.Price.Equal(req.Price) && p.CreatedBy == "anna" && !p.CreatedAt.IsZero()
	})).Return(&domain.Product{ProductID: 1, Name: "Kaffee", Price: req.Price}, nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, "anna")

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal(int64(1), product.ProductID)
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateProduct_ValidationErrors() {
	testCases := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{"blank name", dto.CreateProductRequest{Name: "   ", Price: decimal.NewFromInt(1)}},
		{"negative price", dto.CreateProductRequest{Name: "Tee", Price: decimal.NewFromInt(-1)}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			product, err := suite.service.CreateProduct(context.Background(), tc.req, "anna")
			suite.Nil(product)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockProducts.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestCreateProduct_SaveError() {
	ctx := context.Background()
	expectedErr := apperrors.NewAppError(500, "failed to insert product", errors.New("disk full"))
	suite.mockProducts.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil, expectedErr).Once()

	product, err := suite.service.CreateProduct(ctx, dto.CreateProductRequest{Name: "Tee", Price: decimal.NewFromInt(1)}, "anna")

	suite.Nil(product)
	suite.ErrorIs(err, expectedErr)
}

func (suite *CatalogServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	suite.mockProducts.On("FindProductByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, 99)

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListProducts_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockProducts.On("ListProducts", ctx).Return(nil, nil).Once()

	products, err := suite.service.ListProducts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(products)
	suite.Empty(products)
}

func (suite *CatalogServiceTestSuite) TestUpdateProduct_PriceOnlySkipsLedgerCheck() {
	ctx := context.Background()
	newPrice := decimal.RequireFromString("2.80")
	suite.mockProducts.On("FindProductByID", ctx, int64(7)).Return(suite.existingProduct(), nil).Once()
	suite.mockProducts.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID == 7 && p.Price.Equal(newPrice) && p.Name == "Kaffee" && p.LastUpdatedBy == "ben"
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, 7, dto.UpdateProductRequest{Price: &newPrice}, "ben")

	suite.Require().NoError(err)
	suite.True(product.Price.Equal(newPrice))
	suite.mockStock.AssertNotCalled(suite.T(), "CountStockEntries", mock.Anything, mock.Anything)
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestUpdateProduct_RenameWithLedgerEntriesRejected() {
	ctx := context.Background()
	newName := "Espresso"
	suite.mockProducts.On("FindProductByID", ctx, int64(7)).Return(suite.existingProduct(), nil).Once()
	suite.mockStock.On("CountStockEntries", ctx, int64(7)).Return(int64(3), nil).Once()

	product, err := suite.service.UpdateProduct(ctx, 7, dto.UpdateProductRequest{Name: &newName}, "ben")

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrProductHasStock)
	suite.mockProducts.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestUpdateProduct_RenameWithoutLedgerEntries() {
	ctx := context.Background()
	newName := "Espresso"
	requiresSerials := true
	suite.mockProducts.On("FindProductByID", ctx, int64(7)).Return(suite.existingProduct(), nil).Once()
	suite.mockStock.On("CountStockEntries", ctx, int64(7)).Return(int64(0), nil).Once()
	suite.mockProducts.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Espresso" && p.RequiresSerials
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, 7, dto.UpdateProductRequest{Name: &newName, RequiresSerials: &requiresSerials}, "ben")

	suite.Require().NoError(err)
	suite.Equal("Espresso", product.Name)
	suite.mockStock.AssertExpectations(suite.T())
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestUpdateProduct_NegativePriceRejected() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-5)
	suite.mockProducts.On("FindProductByID", ctx, int64(7)).Return(suite.existingProduct(), nil).Once()

	product, err := suite.service.UpdateProduct(ctx, 7, dto.UpdateProductRequest{Price: &negative}, "ben")

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestDeleteProduct() {
	ctx := context.Background()
	suite.mockProducts.On("DeleteProduct", ctx, int64(7), "ben", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockProducts.On("DeleteProduct", ctx, int64(8), "ben", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteProduct(ctx, 7, "ben"))
	suite.ErrorIs(suite.service.DeleteProduct(ctx, 8, "ben"), apperrors.ErrNotFound)
	suite.mockProducts.AssertExpectations(suite.T())
}
