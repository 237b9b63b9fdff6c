package cache

import (
	"context"
	"sync"
	"time"

	"goldshop/internal/domain"
)

// MemoryStore keeps the snapshot in process memory. Useful for tests
// and single-replica deployments that don't want a cache file on disk.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *domain.NewsSnapshot
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.NewsItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snap == nil || s.now().Sub(s.snap.CapturedAt()) >= s.ttl {
		return nil, nil
	}
	items := make([]domain.NewsItem, len(s.snap.News))
	copy(items, s.snap.News)
	return items, nil
}

func (s *MemoryStore) Save(ctx context.Context, items []domain.NewsItem) error {
	copied := make([]domain.NewsItem, len(items))
	copy(copied, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &domain.NewsSnapshot{
		News:      copied,
		Timestamp: s.now().UnixMilli(),
	}
	return nil
}
