// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Cache    CacheConfig
	Redis    RedisConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
	ServeMetrics bool `mapstructure:"serve_metrics"`
}

// ProviderConfig holds settings for the exchange rate provider.
type ProviderConfig struct {
	BaseURL    string   `mapstructure:"base_url"`
	TimeoutSec int      `mapstructure:"timeout_sec"`
	MirrorURLs []string `mapstructure:"mirror_urls"` // Tried in order when the primary is unreachable.
}

// CacheConfig selects where rates are cached.
type CacheConfig struct {
	Backend string `mapstructure:"backend"` // "memory" or "redis".
}

// RedisConfig holds connection settings for the shared rate cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"` // Required when cache.backend is "redis".
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("CONVERTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))
	cfg.Provider.BaseURL = strings.TrimRight(cfg.Provider.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("provider.base_url", "https://api.exchangerate-api.com/v4")
	v.SetDefault("provider.timeout_sec", 10)
	v.SetDefault("provider.mirror_urls", []string{})
	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Provider.BaseURL == "" {
		errs = append(errs, fmt.Errorf("provider.base_url is required"))
	}
	if c.Provider.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("provider.timeout_sec must be positive, got %d", c.Provider.TimeoutSec))
	}
	for i, u := range c.Provider.MirrorURLs {
		if strings.TrimSpace(u) == "" {
			errs = append(errs, fmt.Errorf("provider.mirror_urls[%d] is empty", i))
		}
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, fmt.Errorf("redis.addr is required for the redis cache backend (set CONVERTER_REDIS_ADDR)"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend))
	}

	return errors.Join(errs...)
}
