// ABOUTME: Builds the application object graph from configuration
// ABOUTME: Shared by the serve and search commands

package main

import (
	"context"
	"fmt"
	"time"

	"shopthelook-api/core/domain"
	"shopthelook-api/core/interfaces"
	corepinterest "shopthelook-api/core/pinterest"
	"shopthelook-api/core/search"
	"shopthelook-api/core/services"
	"shopthelook-api/infrastructure/cache/memory"
	"shopthelook-api/infrastructure/cache/redis"
	"shopthelook-api/infrastructure/cache/sqlite"
	stdhttp "shopthelook-api/infrastructure/http/standard"
	"shopthelook-api/infrastructure/logger/logruslogger"
	"shopthelook-api/infrastructure/logger/zaplogger"
	"shopthelook-api/infrastructure/pinterest"
	"shopthelook-api/infrastructure/search/google"
	"shopthelook-api/pkg/config"
	"shopthelook-api/pkg/featureflags"
)

const upstreamTimeout = 30 * time.Second

// app holds the wired services and everything that must be closed on exit
type app struct {
	cfg       *config.Config
	logger    interfaces.Logger
	search    *search.ProductSearchService
	pinterest *corepinterest.PinterestService

	closers []func() error
}

type closableLogger interface {
	interfaces.Logger
	Close() error
}

func newLogger(cfg config.LogConfig) (closableLogger, error) {
	switch cfg.Backend {
	case "zap":
		return zaplogger.New(cfg)
	default:
		return logruslogger.New(cfg)
	}
}

func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func() error, error) {
	memoryCache := func() interfaces.Cache {
		return memory.NewMemoryCache(time.Duration(cfg.Memory.DefaultExpiration) * time.Second)
	}

	switch cfg.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache(), nil, nil
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return c, c.Close, nil
	case "sqlite":
		c, err := sqlite.NewSQLiteCache(cfg.SQLite.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite cache: %w", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return c, c.Close, nil
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache(), nil, nil
	}
}

// newApp loads nothing itself; cfg must already be validated
func newApp(ctx context.Context, cfg *config.Config, flags featureflags.Manager) (*app, error) {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}
	a.closers = append(a.closers, logger.Close)

	cache, closeCache, err := newCache(cfg.Cache, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	if closeCache != nil {
		a.closers = append(a.closers, closeCache)
	}

	httpClient := stdhttp.NewStandardHTTPClient(upstreamTimeout, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	provider, err := google.NewProvider(ctx, cfg.Google, httpClient.StdClient(), logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create image search provider: %w", err)
	}

	domains := cfg.Search.ShoppingDomains
	if len(domains) == 0 {
		domains = domain.DefaultShoppingDomains
	}

	opts := search.Options{
		Domains:         domain.NewShoppingDomainSet(domains),
		StrictHostMatch: flags.IsEnabled(featureflags.StrictHostMatch),
		CacheTTL:        cfg.Search.CacheTTL,
	}
	if flags.IsEnabled(featureflags.ThumbnailEnrichment) {
		opts.Thumbnails = services.NewThumbnailService(deps)
	}
	a.search = search.NewProductSearchService(deps, provider, opts)

	// a nil interface, not a typed nil, so the service reports itself unconfigured
	var pinterestAPI interfaces.PinterestAPI
	if cfg.Pinterest.Configured() {
		pinterestAPI = pinterest.NewClient(cfg.Pinterest, httpClient, logger)
	} else {
		logger.Warn("Pinterest credentials not set, Pinterest endpoints will return 503", nil)
	}
	a.pinterest = corepinterest.NewPinterestService(pinterestAPI, logger)

	logger.Info("Application configured", map[string]interface{}{
		"cache_type":           cfg.Cache.Type,
		"shopping_domains":     len(domains),
		"strict_host_match":    opts.StrictHostMatch,
		"thumbnail_enrichment": opts.Thumbnails != nil,
	})

	return a, nil
}

// Close releases resources in reverse order of creation
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
