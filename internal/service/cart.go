package service

import (
	"sync"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/store"
)

// CartService owns the cart ledger. All mutations happen under the mutex and
// are written through to the store before the lock is released, so the
// persisted cart never lags the in-memory one.
type CartService struct {
	mu     sync.Mutex
	cart   domain.Cart
	store  *store.Store
	logger *logger.Logger
}

// NewCartService creates the cart service, restoring the persisted cart.
// A missing or corrupt entry starts the session with an empty cart.
func NewCartService(st *store.Store, log *logger.Logger) *CartService {
	s := &CartService{
		store:  st,
		logger: log,
	}
	if st.Load(store.KeyCart, &s.cart) && s.cart.Count() > 0 {
		log.Info("restored cart", "items", len(s.cart.Items), "units", s.cart.Count())
	}
	return s
}

func (s *CartService) persist() {
	s.store.Save(store.KeyCart, &s.cart)
}

// Add merges a product into the cart. An existing line gains quantity; a new
// line locks in the product's current price.
func (s *CartService) Add(p domain.Product, qty int) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p, qty)
	s.persist()
	return s.cart.Snapshot()
}

// SetQuantity sets a line's quantity, clamped to at least one. Unknown SKUs
// are ignored.
func (s *CartService) SetQuantity(sku string, qty int) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(sku, qty)
	s.persist()
	return s.cart.Snapshot()
}

// Increment raises a line's quantity by one.
func (s *CartService) Increment(sku string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Increment(sku)
	s.persist()
	return s.cart.Snapshot()
}

// Decrement lowers a line's quantity by one, flooring at one. Removal is
// always explicit.
func (s *CartService) Decrement(sku string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Decrement(sku)
	s.persist()
	return s.cart.Snapshot()
}

// Remove deletes a line entirely. Idempotent.
func (s *CartService) Remove(sku string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(sku)
	s.persist()
	return s.cart.Snapshot()
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.persist()
}

// Items returns a snapshot of the cart lines.
func (s *CartService) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// Contains reports whether a SKU has a line in the cart.
func (s *CartService) Contains(sku string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contains(sku)
}

// Total returns the exact sum of line subtotals.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// TotalRounded returns the total rounded to two decimals, the amount sent
// to payment.
func (s *CartService) TotalRounded() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalRounded()
}

// Count returns the total unit count across all lines.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// SKUs returns the SKUs currently in the cart.
func (s *CartService) SKUs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SKUs()
}
