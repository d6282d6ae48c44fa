// ABOUTME: Huma API server configuration and setup
// ABOUTME: Builds the chi router, middleware chain, OpenAPI documentation and route table

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"shopthelook-api/api/handlers"
	"shopthelook-api/api/middleware"
	"shopthelook-api/core/interfaces"
)

const (
	apiTitle   = "Shop The Look API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// Services are the core services the routes delegate to
type Services struct {
	Search    interfaces.ProductSearcher
	Pinterest interfaces.PinterestGateway
}

// NewAPIWithMiddleware creates a new API with middleware configured. The
// returned stop function releases the rate limiter.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, func()) {
	router := chi.NewRouter()

	// CORS must run before anything that can reject the request
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	stop := func() {}
	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	router.Use(chimiddleware.Compress(5, "application/json"))

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Backend for Shop The Look: Pinterest login and feed, and shopping search by image"

	api := humachi.New(router, config)

	return api, router, stop
}

// RegisterRoutes mounts every endpoint on api
func RegisterRoutes(api huma.API, svc Services) {
	handlers.NewHealthHandler().RegisterRoutes(api)
	handlers.NewSearchHandler(svc.Search).RegisterRoutes(api)
	handlers.NewPinterestHandler(svc.Pinterest).RegisterRoutes(api)
}
