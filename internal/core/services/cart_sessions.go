package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cartSession guards one open cart. closed is set once the cart has been
// checked out or discarded, so late callers holding the pointer fail cleanly.
type cartSession struct {
	mu     sync.Mutex
	cart   *domain.Cart
	closed bool
}

// cartSessionService implements the CartSessionSvc interface on a bounded LRU.
// The least recently used cart is dropped when capacity is reached; carts are never persisted.
type cartSessionService struct {
	BaseService
	carts    portssvc.CartSvc
	checkout portssvc.CheckoutSvc
	sessions *lru.Cache[string, *cartSession]
}

// NewCartSessionService creates a cart session store holding at most capacity open carts.
func NewCartSessionService(capacity int, carts portssvc.CartSvc, checkout portssvc.CheckoutSvc) (portssvc.CartSessionSvc, error) {
	sessions, err := lru.New[string, *cartSession](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart session store: %w", err)
	}
	return &cartSessionService{
		carts:    carts,
		checkout: checkout,
		sessions: sessions,
	}, nil
}

var _ portssvc.CartSessionSvc = (*cartSessionService)(nil)

func (s *cartSessionService) OpenCart(ctx context.Context) (*domain.Cart, error) {
	cartID := uuid.NewString()
	session := &cartSession{cart: domain.NewCart(cartID, s.Now())}
	if evicted := s.sessions.Add(cartID, session); evicted {
		s.LogInfo(ctx, "Cart session store full, least recently used cart dropped")
	}
	s.LogDebug(ctx, "Cart opened", slog.String("cart_id", cartID))
	return snapshotCart(session.cart), nil
}

func (s *cartSessionService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	session, err := s.lookup(cartID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return nil, fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}
	return snapshotCart(session.cart), nil
}

func (s *cartSessionService) AddLine(ctx context.Context, cartID string, productID int64) (*domain.Cart, error) {
	session, err := s.lookup(cartID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return nil, fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}
	if _, err := s.carts.AddToCart(ctx, session.cart, productID); err != nil {
		return nil, err
	}
	return snapshotCart(session.cart), nil
}

func (s *cartSessionService) DiscardCart(ctx context.Context, cartID string) error {
	session, err := s.lookup(cartID)
	if err != nil {
		return err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.closed = true
	session.cart.Clear()
	s.sessions.Remove(cartID)
	s.LogDebug(ctx, "Cart discarded", slog.String("cart_id", cartID))
	return nil
}

func (s *cartSessionService) CheckoutCart(ctx context.Context, cartID string, paymentMethod string, operatorID string) (*domain.Receipt, error) {
	session, err := s.lookup(cartID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return nil, fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}

	receipt, err := s.checkout.Checkout(ctx, session.cart, paymentMethod, operatorID)
	if err != nil {
		// The cart stays open so the operator can fix it and retry
		return nil, err
	}

	session.closed = true
	session.cart.Clear()
	s.sessions.Remove(cartID)
	return receipt, nil
}

func (s *cartSessionService) lookup(cartID string) (*cartSession, error) {
	session, ok := s.sessions.Get(cartID)
	if !ok {
		return nil, fmt.Errorf("%w: cart %s", apperrors.ErrNotFound, cartID)
	}
	return session, nil
}

func snapshotCart(cart *domain.Cart) *domain.Cart {
	lines := make([]domain.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return &domain.Cart{CartID: cart.CartID, Lines: lines, CreatedAt: cart.CreatedAt}
}
