package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"goldshop/internal/domain"
)

// Source fetches relevant news items from one external feed.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.NewsItem, error)
}

// Cache stores the aggregated snapshot with a validity window. Load
// returns nil on miss or expiry; implementations never surface corrupt
// state as an error.
type Cache interface {
	Load(ctx context.Context) ([]domain.NewsItem, error)
	Save(ctx context.Context, items []domain.NewsItem) error
}
