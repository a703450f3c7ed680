package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CartSessionTestSuite struct {
	suite.Suite
	mockCarts    *MockCartService
	mockCheckout *MockCheckoutService
	sessions     portssvc.CartSessionSvc
}

func (suite *CartSessionTestSuite) SetupTest() {
	suite.mockCarts = new(MockCartService)
	suite.mockCheckout = new(MockCheckoutService)
	sessions, err := services.NewCartSessionService(4, suite.mockCarts, suite.mockCheckout)
	suite.Require().NoError(err)
	suite.sessions = sessions
}

func TestCartSessionTestSuite(t *testing.T) {
	suite.Run(t, new(CartSessionTestSuite))
}

// expectAdd makes the cart service append one line for productID.
func (suite *CartSessionTestSuite) expectAdd(productID int64) {
	suite.mockCarts.On("AddToCart", mock.Anything, mock.AnythingOfType("*domain.Cart"), productID).
		Run(func(args mock.Arguments) {
			cart := args.Get(1).(*domain.Cart)
			cart.AddLine(domain.Product{ProductID: productID, Name: "Kaffee", Price: decimal.RequireFromString("2.50")}, time.Now())
		}).
		Return(&domain.CartLine{ProductID: productID}, nil).Once()
}

func (suite *CartSessionTestSuite) TestOpenAndGet() {
	ctx := context.Background()
	cart, err := suite.sessions.OpenCart(ctx)
	suite.Require().NoError(err)
	suite.NotEmpty(cart.CartID)
	suite.True(cart.IsEmpty())

	got, err := suite.sessions.GetCart(ctx, cart.CartID)
	suite.Require().NoError(err)
	suite.Equal(cart.CartID, got.CartID)

	_, err = suite.sessions.GetCart(ctx, "no-such-cart")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CartSessionTestSuite) TestAddLine_ReturnsSnapshot() {
	ctx := context.Background()
	cart, _ := suite.sessions.OpenCart(ctx)
	suite.expectAdd(7)

	snapshot, err := suite.sessions.AddLine(ctx, cart.CartID, 7)
	suite.Require().NoError(err)
	suite.Len(snapshot.Lines, 1)

	snapshot.Lines = append(snapshot.Lines, domain.CartLine{ProductID: 99})
	got, err := suite.sessions.GetCart(ctx, cart.CartID)
	suite.Require().NoError(err)
	suite.Len(got.Lines, 1)
}

func (suite *CartSessionTestSuite) TestAddLine_ErrorLeavesCart() {
	ctx := context.Background()
	cart, _ := suite.sessions.OpenCart(ctx)
	suite.mockCarts.On("AddToCart", mock.Anything, mock.AnythingOfType("*domain.Cart"), int64(7)).
		Return(nil, apperrors.ErrOutOfStock).Once()

	snapshot, err := suite.sessions.AddLine(ctx, cart.CartID, 7)

	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrOutOfStock)
	got, _ := suite.sessions.GetCart(ctx, cart.CartID)
	suite.True(got.IsEmpty())
}

func (suite *CartSessionTestSuite) TestCheckoutCart_SuccessClosesSession() {
	ctx := context.Background()
	cart, _ := suite.sessions.OpenCart(ctx)
	suite.expectAdd(7)
	_, err := suite.sessions.AddLine(ctx, cart.CartID, 7)
	suite.Require().NoError(err)

	suite.mockCheckout.On("Checkout", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return c.CartID == cart.CartID && len(c.Lines) == 1
	}), "CASH", "anna").Return(&domain.Receipt{SaleID: 11}, nil).Once()

	receipt, err := suite.sessions.CheckoutCart(ctx, cart.CartID, "CASH", "anna")

	suite.Require().NoError(err)
	suite.Equal(int64(11), receipt.SaleID)
	_, err = suite.sessions.GetCart(ctx, cart.CartID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.sessions.CheckoutCart(ctx, cart.CartID, "CASH", "anna")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCheckout.AssertNumberOfCalls(suite.T(), "Checkout", 1)
}

func (suite *CartSessionTestSuite) TestCheckoutCart_FailureKeepsLines() {
	ctx := context.Background()
	cart, _ := suite.sessions.OpenCart(ctx)
	suite.expectAdd(7)
	_, err := suite.sessions.AddLine(ctx, cart.CartID, 7)
	suite.Require().NoError(err)
	suite.mockCheckout.On("Checkout", mock.Anything, mock.AnythingOfType("*domain.Cart"), "CASH", "anna").
		Return(nil, apperrors.ErrStockChanged).Once()

	receipt, err := suite.sessions.CheckoutCart(ctx, cart.CartID, "CASH", "anna")

	suite.Nil(receipt)
	suite.ErrorIs(err, apperrors.ErrStockChanged)
	got, err := suite.sessions.GetCart(ctx, cart.CartID)
	suite.Require().NoError(err)
	suite.Len(got.Lines, 1)
}

func (suite *CartSessionTestSuite) TestDiscardCart() {
	ctx := context.Background()
	cart, _ := suite.sessions.OpenCart(ctx)

	suite.NoError(suite.sessions.DiscardCart(ctx, cart.CartID))
	_, err := suite.sessions.GetCart(ctx, cart.CartID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.sessions.DiscardCart(ctx, cart.CartID), apperrors.ErrNotFound)
}

func (suite *CartSessionTestSuite) TestLeastRecentlyUsedCartIsDropped() {
	ctx := context.Background()
	sessions, err := services.NewCartSessionService(1, suite.mockCarts, suite.mockCheckout)
	suite.Require().NoError(err)

	first, _ := sessions.OpenCart(ctx)
	second, _ := sessions.OpenCart(ctx)

	_, err = sessions.GetCart(ctx, first.CartID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = sessions.GetCart(ctx, second.CartID)
	suite.NoError(err)
}

func (suite *CartSessionTestSuite) TestInvalidCapacity() {
	sessions, err := services.NewCartSessionService(0, suite.mockCarts, suite.mockCheckout)
	suite.Nil(sessions)
	suite.Error(err)
}
