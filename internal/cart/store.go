// Package cart implements the shopping cart state container: an
// insertion-ordered item list with incrementally maintained totals.
package cart

import (
	"sync"
	"time"

	"goldshop/internal/domain"
)

// Store holds the authoritative item list for one shopper. Every
// operation is atomic with respect to the observable state; totals are
// adjusted together with the item list change, never recomputed from
// scratch.
type Store struct {
	mu         sync.Mutex
	items      []domain.CartItem
	totalItems int
	totalPrice int64
	lastUsed   time.Time
	now        func() time.Time
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return newStore(time.Now)
}

func newStore(now func() time.Time) *Store {
	return &Store{now: now, lastUsed: now()}
}

// Add puts one unit of the product into the cart. If the product is
// already present its quantity grows by one, otherwise a new item is
// appended. Always succeeds.
func (s *Store) Add(product domain.Product) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.totalItems++
			s.totalPrice += product.Price
			return s.snapshot()
		}
	}

	s.items = append(s.items, domain.CartItem{
		Product:  product,
		Quantity: 1,
		AddedAt:  s.now(),
	})
	s.totalItems++
	s.totalPrice += product.Price
	return s.snapshot()
}

// Remove drops the item with the given product id entirely. Removing an
// absent id is a no-op.
func (s *Store) Remove(productID string) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.remove(productID)
	return s.snapshot()
}

func (s *Store) remove(productID string) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.totalItems -= s.items[i].Quantity
			s.totalPrice -= s.items[i].Product.Price * int64(s.items[i].Quantity)
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the item with the given
// product id. A quantity of zero or less removes the item; an absent id
// is a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if quantity <= 0 {
		s.remove(productID)
		return s.snapshot()
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			old := s.items[i].Quantity
			s.items[i].Quantity = quantity
			s.totalItems += quantity - old
			s.totalPrice += int64(quantity-old) * s.items[i].Product.Price
			break
		}
	}
	return s.snapshot()
}

// Clear empties the cart.
func (s *Store) Clear() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.items = nil
	s.totalItems = 0
	s.totalPrice = 0
	return s.snapshot()
}

// Contains reports whether the product is in the cart.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			return true
		}
	}
	return false
}

// State returns the current cart snapshot.
func (s *Store) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// LastUsed returns the time of the last mutating access, used by the
// manager for idle eviction.
func (s *Store) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Store) touch() {
	s.lastUsed = s.now()
}

func (s *Store) snapshot() domain.CartState {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return domain.CartState{
		Items:      items,
		TotalItems: s.totalItems,
		TotalPrice: s.totalPrice,
	}
}
