package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"goldshop/internal/domain"
)

// RedisStore keeps the snapshot in a shared key-value store so several
// replicas agree on freshness. Expiry is delegated to the server TTL.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

func NewRedisStore(cfg RedisConfig, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		key:    cfg.Key,
		ttl:    ttl,
		logger: logger.With("cache", "redis"),
	}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.NewsItem, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.logger.Warn("failed to read cache key", "error", err)
		return nil, nil
	}

	var snap domain.NewsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("corrupt cache value, treating as miss", "error", err)
		return nil, nil
	}

	return snap.News, nil
}

func (s *RedisStore) Save(ctx context.Context, items []domain.NewsItem) error {
	snap := domain.NewsSnapshot{
		News:      items,
		Timestamp: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
