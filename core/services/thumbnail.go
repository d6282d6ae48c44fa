// ABOUTME: Thumbnail service finds a preview image for product pages that came back without one
// ABOUTME: Reads Open Graph and Twitter card meta tags with goquery and caches the outcome

package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"shopthelook-api/core/interfaces"
)

const (
	thumbnailCacheTTL    = 6 * time.Hour
	thumbnailFetchLimit  = 10 * time.Second
	thumbnailCachePrefix = "thumbnail:"
)

// thumbnailSelectors are tried in order; the first non-empty value wins
var thumbnailSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="og:image"]`, "content"},
	{`meta[property="og:image:url"]`, "content"},
	{`meta[name="twitter:image"]`, "content"},
	{`link[rel="image_src"]`, "href"},
}

// ThumbnailService resolves preview images for web pages
type ThumbnailService struct {
	deps interfaces.Dependencies
}

// NewThumbnailService creates a new thumbnail service
func NewThumbnailService(deps interfaces.Dependencies) *ThumbnailService {
	return &ThumbnailService{
		deps: deps,
	}
}

// FindThumbnail returns the absolute URL of the page's preview image, or ""
// if the page declares none.
func (s *ThumbnailService) FindThumbnail(ctx context.Context, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return "", fmt.Errorf("invalid page URL %q", pageURL)
	}

	cacheKey := thumbnailCachePrefix + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			return string(data), nil
		}
	}

	if s.deps.HTTPClient == nil {
		return "", fmt.Errorf("HTTP client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, thumbnailFetchLimit)
	defer cancel()

	header := http.Header{}
	header.Set("Accept", "text/html")

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL, header)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	thumbnail := extractThumbnail(doc, base)

	// Misses are cached too so the same page is not fetched again
	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(thumbnail), thumbnailCacheTTL)
	}

	return thumbnail, nil
}

func extractThumbnail(doc *goquery.Document, base *url.URL) string {
	for _, sel := range thumbnailSelectors {
		value, ok := doc.Find(sel.selector).First().Attr(sel.attr)
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			continue
		}

		ref, err := url.Parse(value)
		if err != nil {
			continue
		}
		return base.ResolveReference(ref).String()
	}
	return ""
}
