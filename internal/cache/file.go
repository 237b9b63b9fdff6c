// Package cache provides TTL-bounded stores for aggregated news
// snapshots. A load after the validity window (or of corrupt state) is
// a miss, never an error the pipeline has to handle.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"goldshop/internal/domain"
)

// FileStore persists the snapshot as whole-file JSON in the original
// `{news: [...], timestamp: epoch-millis}` format. Concurrent writers
// race last-writer-wins, which is acceptable for a freshness
// optimization.
type FileStore struct {
	path   string
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewFileStore(path string, ttl time.Duration, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		ttl:    ttl,
		logger: logger.With("cache", "file"),
		now:    time.Now,
	}
}

// Load returns the cached items, or nil when the file is absent,
// expired or unreadable.
func (s *FileStore) Load(ctx context.Context) ([]domain.NewsItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read cache file", "error", err)
		}
		return nil, nil
	}

	var snap domain.NewsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("corrupt cache file, treating as miss", "error", err)
		return nil, nil
	}

	if s.now().Sub(snap.CapturedAt()) >= s.ttl {
		return nil, nil
	}

	return snap.News, nil
}

// Save overwrites the snapshot with a fresh capture timestamp.
func (s *FileStore) Save(ctx context.Context, items []domain.NewsItem) error {
	snap := domain.NewsSnapshot{
		News:      items,
		Timestamp: s.now().UnixMilli(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
