package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig `yaml:"server"`
	Cache    CacheConfig  `yaml:"cache"`
	News     NewsConfig   `yaml:"news"`
	Cart     CartConfig   `yaml:"cart"`
	LogLevel string       `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend"` // file, memory or redis
	Path    string        `yaml:"path"`
	TTL     time.Duration `yaml:"ttl"`
	Redis   RedisConfig   `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type NewsConfig struct {
	SourceTimeout time.Duration `yaml:"source_timeout"`
	MaxPerSource  int           `yaml:"max_per_source"`
	MaxItems      int           `yaml:"max_items"`
	MinItems      int           `yaml:"min_items"`
	MinFallback   int           `yaml:"min_fallback"`
	Refresh       RefreshConfig `yaml:"refresh"`
}

type RefreshConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type CartConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns a configuration with every field at its default,
// used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "file"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "news-cache.json"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Minute
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Cache.Redis.Key == "" {
		c.Cache.Redis.Key = "goldshop:news"
	}
	if c.News.SourceTimeout == 0 {
		c.News.SourceTimeout = 10 * time.Second
	}
	if c.News.MaxPerSource == 0 {
		c.News.MaxPerSource = 20
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 30
	}
	if c.News.MinItems == 0 {
		c.News.MinItems = 15
	}
	if c.News.MinFallback == 0 {
		c.News.MinFallback = 5
	}
	if c.News.Refresh.Interval == 0 {
		c.News.Refresh.Interval = 25 * time.Minute
	}
	if c.Cart.SessionTTL == 0 {
		c.Cart.SessionTTL = 12 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
