package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Manager owns the carts of all active sessions. Abandoned carts are
// evicted after the idle TTL so sessions don't accumulate forever.
type Manager struct {
	mu     sync.Mutex
	carts  map[string]*Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewManager(ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		carts:  make(map[string]*Store),
		ttl:    ttl,
		logger: logger.With("component", "cart_manager"),
	}
}

// Get returns the cart for the session, creating it on first access.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.carts[sessionID]
	if !ok {
		store = NewStore()
		m.carts[sessionID] = store
	}
	return store
}

// Len returns the number of live carts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts)
}

// EvictIdle drops carts not touched within the TTL and returns how many
// were removed.
func (m *Manager) EvictIdle() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-m.ttl)
	evicted := 0
	for id, store := range m.carts {
		if store.LastUsed().Before(cutoff) {
			delete(m.carts, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle carts periodically until the context is cancelled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.EvictIdle(); n > 0 {
				m.logger.Info("evicted idle carts", "count", n)
			}
		}
	}
}
