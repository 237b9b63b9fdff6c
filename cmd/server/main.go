package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"goldshop/internal/cache"
	"goldshop/internal/cart"
	"goldshop/internal/catalog"
	"goldshop/internal/config"
	"goldshop/internal/scheduler"
	"goldshop/internal/server"
	"goldshop/internal/service"
	"goldshop/internal/source/rss"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		logger.Info("config file not found, using defaults", "path", *configPath)
		cfg = config.Default()
	}

	logger = setupLogger(cfg.LogLevel)

	// Initialize news cache backend
	newsCache, closeCache, err := newCache(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer closeCache()

	// Initialize RSS sources
	rssSources := rss.NewAll(rss.Config{
		Timeout:  cfg.News.SourceTimeout,
		MaxItems: cfg.News.MaxPerSource,
	}, logger)

	sources := make([]service.Source, len(rssSources))
	for i, src := range rssSources {
		sources[i] = src
	}

	newsService := service.NewNewsService(sources, newsCache, logger, cfg.News)

	carts := cart.NewManager(cfg.Cart.SessionTTL, logger)

	srv := server.New(catalog.Default(), carts, newsService, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Route(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go carts.Run(ctx)

	if cfg.News.Refresh.Enabled {
		sched := scheduler.NewScheduler(newsService, cfg.News.Refresh.Interval, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
		cancel()
	}()

	logger.Info("starting storefront server",
		"addr", cfg.Server.Addr,
		"cache_backend", cfg.Cache.Backend,
		"sources", len(sources),
	)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newCache(cfg *config.Config, logger *slog.Logger) (service.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case "file":
		return cache.NewFileStore(cfg.Cache.Path, cfg.Cache.TTL, logger), func() {}, nil
	case "memory":
		return cache.NewMemoryStore(cfg.Cache.TTL), func() {}, nil
	case "redis":
		store, err := cache.NewRedisStore(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Key:      cfg.Cache.Redis.Key,
		}, cfg.Cache.TTL, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, errors.New("unknown cache backend: " + cfg.Cache.Backend)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
