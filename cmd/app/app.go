// Package main is the entry point for the currency converter service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"converterservice/internal/clock"
	"converterservice/internal/config"
	"converterservice/internal/provider"
	"converterservice/internal/ratecache"
	"converterservice/internal/service"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	rdb        *redis.Client // nil with the in-memory cache
	cache      ratecache.Cache
	httpServer *http.Server
}

// NewApp initializes all dependencies and returns a ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initCache(); err != nil {
		_ = app.close()
		return nil, err
	}

	app.initServices()
	return app, nil
}

// close releases the Redis connection, if any.
func (app *App) close() error {
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			return fmt.Errorf("redis cache close: %w", err)
		}
	}
	return nil
}

func (app *App) initCache() error {
	switch app.cfg.Cache.Backend {
	case config.CacheBackendRedis:
		app.rdb = redis.NewClient(&redis.Options{
			Addr:     app.cfg.Redis.Addr,
			Password: app.cfg.Redis.Password,
			DB:       app.cfg.Redis.DB,
		})
		if err := app.rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("connect to Redis (cache, %s): %w", app.cfg.Redis.Addr, err)
		}
		app.cache = ratecache.NewRedisCache(app.rdb, clock.Real{})
		app.logger.Infow("Connected to Redis rate cache", "addr", app.cfg.Redis.Addr)
	default:
		app.cache = ratecache.NewMemoryCache(clock.Real{})
		app.logger.Infow("Using in-memory rate cache")
	}
	return nil
}

func (app *App) initServices() {
	fetcher := newRateFetcher(app.cfg.Provider)
	converter := service.NewConverter(app.cache, fetcher, app.logger)
	app.initHTTP(converter)
}

func newRateFetcher(cfg config.ProviderConfig) provider.RateFetcher {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	primary := provider.NewExchangeRateAPIProvider(cfg.BaseURL, timeout)
	if len(cfg.MirrorURLs) == 0 {
		return primary
	}

	fetchers := []provider.RateFetcher{primary}
	for _, u := range cfg.MirrorURLs {
		fetchers = append(fetchers, provider.NewExchangeRateAPIProvider(u, timeout))
	}
	return provider.NewFetcherChain(fetchers...)
}

// Run starts the HTTP server, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP server listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown: triggered by context cancellation (signal or server failure).
	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown drains in-flight HTTP requests before closing the cache connection.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down server...")

	var errs []error

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	if err := app.close(); err != nil {
		app.logger.Errorw("Connection cleanup errors", "error", err)
		errs = append(errs, err)
	}

	app.logger.Infow("Shutdown complete")
	return errors.Join(errs...)
}
