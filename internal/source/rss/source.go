// Package rss fetches and filters entries from external RSS feeds.
package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"goldshop/internal/domain"
)

// Config holds per-source fetch settings.
type Config struct {
	Timeout  time.Duration // bound on a single feed fetch
	MaxItems int           // cap on matching entries per source
}

// Source polls a single RSS feed and keeps only gold/coin-related
// entries.
type Source struct {
	parser   *gofeed.Parser
	feed     Feed
	maxItems int
	logger   *slog.Logger
}

// New creates a source for the given feed.
func New(feed Feed, cfg Config, logger *slog.Logger) *Source {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Timeout}
	parser.UserAgent = "GoldShop/1.0"

	return &Source{
		parser:   parser,
		feed:     feed,
		maxItems: cfg.MaxItems,
		logger:   logger.With("source", feed.Name),
	}
}

// NewAll creates one source per builtin feed.
func NewAll(cfg Config, logger *slog.Logger) []*Source {
	sources := make([]*Source, 0, len(Feeds))
	for _, feed := range Feeds {
		sources = append(sources, New(feed, cfg, logger))
	}
	return sources
}

// Name returns the feed display name.
func (s *Source) Name() string {
	return s.feed.Name
}

// Fetch downloads the feed and returns up to MaxItems relevant entries.
// Descriptions are stripped of HTML; publication dates are normalized
// to RFC 3339, substituting the current time when unparseable.
func (s *Source) Fetch(ctx context.Context) ([]domain.NewsItem, error) {
	feed, err := s.parser.ParseURLWithContext(s.feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feed.URL, err)
	}

	items := make([]domain.NewsItem, 0, s.maxItems)
	for _, entry := range feed.Items {
		if !Relevant(entry.Title, entry.Description) {
			continue
		}

		items = append(items, domain.NewsItem{
			Title:       entry.Title,
			Description: CleanDescription(entry.Description),
			Link:        entry.Link,
			Source:      s.feed.Name,
			PublishedAt: normalizeDate(entry.PublishedParsed),
		})

		if len(items) >= s.maxItems {
			break
		}
	}

	s.logger.Debug("fetched feed",
		"entries", len(feed.Items),
		"matched", len(items),
	)

	return items, nil
}

func normalizeDate(t *time.Time) string {
	if t == nil {
		return time.Now().UTC().Format(time.RFC3339)
	}
	return t.UTC().Format(time.RFC3339)
}
