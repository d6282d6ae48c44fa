// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: in-process cache backed by go-cache
// - cache/redis: Redis cache
// - cache/sqlite: SQLite file cache with periodic expiry cleanup
// - http/standard: HTTP client with retries and credential-redacting request logs
// - logger/logruslogger: logrus logger with optional lumberjack file rotation
// - logger/zaplogger: zap logger
// - search/google: Google Custom Search image provider
// - pinterest: Pinterest OAuth and v5 REST client
//
// # Cache Example
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "key", []byte("value"), 10*time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30*time.Second, logger)
//	resp, err := client.Get(ctx, "https://example.com", nil)
//	if err != nil {
//	    return err
//	}
//	defer resp.Body().Close()
package infrastructure
