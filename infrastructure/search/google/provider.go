// ABOUTME: Google Custom Search image provider built on the customsearch/v1 client
// ABOUTME: Runs image searches and maps API items and errors into core types

package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"shopthelook-api/core/domain"
	coreerrors "shopthelook-api/core/errors"
	"shopthelook-api/core/interfaces"
	"shopthelook-api/pkg/config"
	"shopthelook-api/pkg/utils/text"
)

const apiName = "google-customsearch"

// Provider implements interfaces.ImageSearchProvider with Google Custom Search
type Provider struct {
	service  *customsearch.Service
	apiKey   string
	engineID string
	logger   interfaces.Logger
}

// NewProvider creates a provider that sends requests through httpClient.
// Missing credentials are reported by SearchImages, not here, so the API can
// still start without them.
func NewProvider(ctx context.Context, cfg config.GoogleConfig, httpClient *http.Client, logger interfaces.Logger) (*Provider, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search client: %w", err)
	}

	return &Provider{
		service:  svc,
		apiKey:   cfg.APIKey,
		engineID: cfg.SearchEngineID,
		logger:   logger,
	}, nil
}

// SearchImages runs an image search for query and returns the raw hits
func (p *Provider) SearchImages(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	if p.apiKey == "" {
		return nil, &coreerrors.NotConfiguredError{Service: apiName, Missing: "GOOGLE_API_KEY"}
	}
	if p.engineID == "" {
		return nil, &coreerrors.NotConfiguredError{Service: apiName, Missing: "GOOGLE_SEARCH_ENGINE_ID"}
	}

	// option.WithAPIKey is ignored once WithHTTPClient is set, so the key
	// travels as a per-call query parameter instead
	res, err := p.service.Cse.List().
		Cx(p.engineID).
		Q(query).
		SearchType("image").
		Context(ctx).
		Do(googleapi.QueryParameter("key", p.apiKey))
	if err != nil {
		return nil, p.mapError(err)
	}

	items := make([]domain.SearchResultItem, 0, len(res.Items))
	for _, r := range res.Items {
		if r == nil {
			continue
		}
		item := domain.SearchResultItem{
			Title: text.CleanTitle(r.Title),
			Link:  r.Link,
		}
		if r.Image != nil {
			item.Image = &domain.ImageInfo{ThumbnailLink: r.Image.ThumbnailLink}
		}
		items = append(items, item)
	}

	if p.logger != nil {
		p.logger.Debug("Image search completed", map[string]interface{}{
			"query": query,
			"items": len(items),
		})
	}

	return items, nil
}

func (p *Provider) mapError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if p.logger != nil {
			p.logger.Warn("Custom search API error", map[string]interface{}{
				"status":  gerr.Code,
				"message": gerr.Message,
			})
		}
		return &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: gerr.Code,
			Message:    gerr.Message,
		}
	}
	return fmt.Errorf("custom search request failed: %w", err)
}
