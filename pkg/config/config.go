// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads server, cache, upstream API, search and logging settings once at start-up

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Pinterest contains Pinterest OAuth and API settings
	Pinterest PinterestConfig

	// Google contains Google Custom Search settings
	Google GoogleConfig

	// Search contains product search settings
	Search SearchConfig

	// Log contains logger settings
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window and client IP
	Requests int

	// Window is the length of the rate window
	Window time.Duration
}

// PinterestConfig holds Pinterest settings
type PinterestConfig struct {
	AppID     string
	AppSecret string

	// OAuthURL is the consent page base; the token endpoint is OAuthURL + "/token"
	OAuthURL string

	// APIBase is the v5 REST API root
	APIBase string

	Scopes []string
}

// Configured reports whether the app credentials are present
func (c PinterestConfig) Configured() bool {
	return c.AppID != "" && c.AppSecret != ""
}

// GoogleConfig holds Google Custom Search settings
type GoogleConfig struct {
	APIKey         string
	SearchEngineID string

	// Endpoint overrides the API root, mainly for tests
	Endpoint string
}

// SearchConfig holds product search settings
type SearchConfig struct {
	// ShoppingDomains is the shopping_domains option. Empty means the built-in list.
	ShoppingDomains []string

	// CacheTTL is how long search results are cached
	CacheTTL time.Duration
}

// LogConfig holds logger settings
type LogConfig struct {
	// Backend is logrus or zap
	Backend string

	// Level is debug, info, warn or error
	Level string

	// Format is text or json
	Format string

	// File, when set, receives a copy of the log output
	File string
}

// domainsFile is the layout of SHOPPING_DOMAINS_FILE
type domainsFile struct {
	ShoppingDomains []string `yaml:"shopping_domains"`
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first; variables already set take precedence.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "5000"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:   time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Pinterest: PinterestConfig{
			AppID:     getEnvOrDefault("PINTEREST_APP_ID", ""),
			AppSecret: getEnvOrDefault("PINTEREST_APP_SECRET", ""),
			OAuthURL:  getEnvOrDefault("PINTEREST_OAUTH_URL", "https://www.pinterest.com/oauth"),
			APIBase:   getEnvOrDefault("PINTEREST_API_BASE", "https://api.pinterest.com/v5"),
			Scopes:    splitList(getEnvOrDefault("PINTEREST_SCOPES", "boards:read,pins:read")),
		},
		Google: GoogleConfig{
			APIKey:         getEnvOrDefault("GOOGLE_API_KEY", ""),
			SearchEngineID: getEnvOrDefault("GOOGLE_SEARCH_ENGINE_ID", ""),
			Endpoint:       getEnvOrDefault("GOOGLE_SEARCH_ENDPOINT", ""),
		},
		Search: SearchConfig{
			CacheTTL: time.Duration(getEnvAsIntOrDefault("SEARCH_CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		Log: LogConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "logrus")),
			Level:   strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format:  strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:    getEnvOrDefault("LOG_FILE", ""),
		},
	}

	if path := os.Getenv("SHOPPING_DOMAINS_FILE"); path != "" {
		domains, err := LoadShoppingDomainsFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Search.ShoppingDomains = domains
	}

	// The env list wins over the file
	if list := os.Getenv("SHOPPING_DOMAINS"); list != "" {
		cfg.Search.ShoppingDomains = splitList(list)
	}

	return cfg, nil
}

// LoadShoppingDomainsFile reads the shopping_domains list from a YAML file
func LoadShoppingDomainsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shopping domains file: %w", err)
	}

	var file domainsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse shopping domains file %s: %w", path, err)
	}

	return file.ShoppingDomains, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// splitList splits a comma separated list, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "sqlite":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.RateLimit.Requests < 0 {
		return errors.New("rate limit cannot be negative")
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		return errors.New("rate window must be at least 1 second")
	}

	if c.Search.CacheTTL < 0 {
		return errors.New("search cache TTL cannot be negative")
	}

	switch c.Log.Backend {
	case "logrus", "zap":
	default:
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	return nil
}
