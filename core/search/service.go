// ABOUTME: Product search service turns an image URL into shopping links
// ABOUTME: Combines the image search provider, the shopping filter, thumbnail enrichment and caching

package search

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"shopthelook-api/core/domain"
	coreerrors "shopthelook-api/core/errors"
	"shopthelook-api/core/interfaces"
)

const (
	maxImageURLLength     = 2048
	defaultCacheTTL       = 24 * time.Hour
	enrichmentConcurrency = 4
	cacheKeyPrefix        = "search:products:"
)

// Options configures a ProductSearchService
type Options struct {
	// Domains is the shopping domain set results are filtered against
	Domains domain.ShoppingDomainSet

	// StrictHostMatch switches the filter from substring to hostname matching
	StrictHostMatch bool

	// CacheTTL is how long filtered results are cached. Zero means 24h.
	CacheTTL time.Duration

	// Thumbnails fills in missing result images when set
	Thumbnails interfaces.ThumbnailResolver
}

// ProductSearchService finds shopping results for an image
type ProductSearchService struct {
	deps     interfaces.Dependencies
	provider interfaces.ImageSearchProvider
	opts     Options
}

// NewProductSearchService creates a new product search service instance
func NewProductSearchService(deps interfaces.Dependencies, provider interfaces.ImageSearchProvider, opts Options) *ProductSearchService {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &ProductSearchService{
		deps:     deps,
		provider: provider,
		opts:     opts,
	}
}

// validateImageURL validates the image_url parameter
func (s *ProductSearchService) validateImageURL(imageURL string) error {
	if imageURL == "" {
		return &coreerrors.ValidationError{Field: "image_url", Message: "is required"}
	}

	if len(imageURL) > maxImageURLLength {
		return &coreerrors.ValidationError{
			Field:   "image_url",
			Message: fmt.Sprintf("cannot exceed %d characters", maxImageURLLength),
		}
	}

	return nil
}

// SearchProducts searches for images similar to imageURL and returns the
// hits that link to a shopping domain.
func (s *ProductSearchService) SearchProducts(ctx context.Context, imageURL string) ([]domain.ShoppingResult, error) {
	if err := s.validateImageURL(imageURL); err != nil {
		return nil, err
	}

	cacheKey := productCacheKey(imageURL)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		s.logDebug("Product search cache hit", map[string]interface{}{
			"image_url": imageURL,
			"results":   len(cached),
		})
		return cached, nil
	}

	if s.provider == nil {
		return nil, &coreerrors.NotConfiguredError{Service: "image search", Missing: "search provider"}
	}

	items, err := s.provider.SearchImages(ctx, imageURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to search images")
	}

	var results []domain.ShoppingResult
	if s.opts.StrictHostMatch {
		results = FilterShoppingResultsByHost(items, s.opts.Domains)
	} else {
		results = FilterShoppingResults(items, s.opts.Domains)
	}

	if s.opts.Thumbnails != nil {
		s.enrichThumbnails(ctx, results)
	}

	s.logInfo("Product search completed", map[string]interface{}{
		"image_url": imageURL,
		"hits":      len(items),
		"results":   len(results),
	})

	s.toCache(ctx, cacheKey, results)

	return results, nil
}

// enrichThumbnails fills empty Image fields in place. Lookups that fail leave
// the field empty.
func (s *ProductSearchService) enrichThumbnails(ctx context.Context, results []domain.ShoppingResult) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)

	for i := range results {
		if results[i].Image != "" {
			continue
		}
		i := i
		g.Go(func() error {
			thumb, err := s.opts.Thumbnails.FindThumbnail(gctx, results[i].Link)
			if err != nil {
				s.logWarn("Thumbnail lookup failed", map[string]interface{}{
					"link":  results[i].Link,
					"error": err.Error(),
				})
				return nil
			}
			results[i].Image = thumb
			return nil
		})
	}

	_ = g.Wait()
}

func (s *ProductSearchService) fromCache(ctx context.Context, key string) ([]domain.ShoppingResult, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var results []domain.ShoppingResult
	if err := json.Unmarshal(data, &results); err != nil {
		s.logWarn("Discarding unreadable cached search results", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}

	if results == nil {
		results = []domain.ShoppingResult{}
	}
	return results, true
}

func (s *ProductSearchService) toCache(ctx context.Context, key string, results []domain.ShoppingResult) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		s.logWarn("Failed to cache search results", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *ProductSearchService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *ProductSearchService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *ProductSearchService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

// productCacheKey hashes the image URL so arbitrary URLs make safe keys
func productCacheKey(imageURL string) string {
	sum := sha1.Sum([]byte(imageURL))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
