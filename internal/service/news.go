package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"goldshop/internal/config"
	"goldshop/internal/domain"
)

// NewsService aggregates gold/coin headlines from the configured
// sources. Every failure mode degrades to cached or static content;
// GetNews never returns an error.
type NewsService struct {
	sources []Source
	cache   Cache
	logger  *slog.Logger
	config  config.NewsConfig
	now     func() time.Time
}

func NewNewsService(
	sources []Source,
	cache Cache,
	logger *slog.Logger,
	cfg config.NewsConfig,
) *NewsService {
	return &NewsService{
		sources: sources,
		cache:   cache,
		logger:  logger.With("component", "news"),
		config:  cfg,
		now:     time.Now,
	}
}

// GetNews runs the aggregation pipeline: cache read, concurrent fetch
// on miss, fallback substitution when everything fails, then sorting,
// fallback padding and truncation.
func (s *NewsService) GetNews(ctx context.Context) []domain.NewsItem {
	all, err := s.cache.Load(ctx)
	if err != nil {
		s.logger.Warn("cache load failed, treating as miss", "error", err)
		all = nil
	}

	if len(all) == 0 {
		fresh := s.fetchAll(ctx)

		if len(fresh) > 0 {
			all = fresh
		} else {
			// Caching the fallback too stops every request in the
			// validity window from hammering unreachable feeds.
			s.logger.Info("no fresh news found, using fallback")
			all = fallbackNews(s.now())
		}

		if err := s.cache.Save(ctx, all); err != nil {
			s.logger.Warn("cache save failed", "error", err)
		}
	}

	return s.finalize(all)
}

// Refresh forces a fetch cycle and cache write, bypassing the validity
// window. Used by the background refresher.
func (s *NewsService) Refresh(ctx context.Context) error {
	fresh := s.fetchAll(ctx)
	if len(fresh) == 0 {
		fresh = fallbackNews(s.now())
	}
	return s.cache.Save(ctx, fresh)
}

// fetchAll queries every source concurrently and flattens the results.
// Each source settles independently; failures contribute nothing.
func (s *NewsService) fetchAll(ctx context.Context) []domain.NewsItem {
	results := make([][]domain.NewsItem, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			items, err := src.Fetch(ctx)
			if err != nil {
				s.logger.Warn("source fetch failed",
					"source", src.Name(),
					"error", err,
				)
				return
			}
			results[i] = items
		}(i, src)
	}
	wg.Wait()

	var all []domain.NewsItem
	for _, items := range results {
		all = append(all, items...)
	}

	s.logger.Info("fetched news from sources",
		"sources", len(s.sources),
		"items", len(all),
	)
	return all
}

// finalize sorts newest-first, truncates, and pads with fallback items
// so the feed never looks thin: at least MinFallback extras, more when
// real content is below MinItems.
func (s *NewsService) finalize(items []domain.NewsItem) []domain.NewsItem {
	sorted := sortByDateDesc(items)
	if len(sorted) > s.config.MaxItems {
		sorted = sorted[:s.config.MaxItems]
	}

	seen := make(map[string]struct{}, len(sorted))
	for _, item := range sorted {
		seen[item.Title] = struct{}{}
	}

	want := s.config.MinFallback
	if n := s.config.MinItems - len(sorted); n > want {
		want = n
	}

	for _, fb := range fallbackNews(s.now()) {
		if want <= 0 {
			break
		}
		if _, ok := seen[fb.Title]; ok {
			continue
		}
		sorted = append(sorted, fb)
		want--
	}

	sorted = sortByDateDesc(sorted)
	if len(sorted) > s.config.MaxItems {
		sorted = sorted[:s.config.MaxItems]
	}
	return sorted
}

func sortByDateDesc(items []domain.NewsItem) []domain.NewsItem {
	out := make([]domain.NewsItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedTime().After(out[j].PublishedTime())
	})
	return out
}
