// ABOUTME: Product search handler for the Huma API
// ABOUTME: Exposes image-based shopping search over HTTP

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"shopthelook-api/core/domain"
	"shopthelook-api/core/interfaces"
)

// SearchHandler handles product search requests
type SearchHandler struct {
	service interfaces.ProductSearcher
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service interfaces.ProductSearcher) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers all search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchProducts",
		Method:      http.MethodGet,
		Path:        "/api/search/products",
		Summary:     "Find products that look like an image",
		Description: "Runs an image search for the given image URL and keeps only results that link to a known shopping site",
		Tags:        []string{"Search"},
	}, h.SearchProducts)
}

// SearchProductsInput defines the input for the SearchProducts operation
type SearchProductsInput struct {
	ImageURL string `query:"image_url" required:"true" doc:"URL of the image to search with"`
}

// SearchProductsOutput defines the output for the SearchProducts operation
type SearchProductsOutput struct {
	Body struct {
		Results []domain.ShoppingResult `json:"results" doc:"Shopping results in search engine order"`
	}
}

// SearchProducts handles GET /api/search/products
func (h *SearchHandler) SearchProducts(ctx context.Context, input *SearchProductsInput) (*SearchProductsOutput, error) {
	results, err := h.service.SearchProducts(ctx, input.ImageURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	if results == nil {
		results = []domain.ShoppingResult{}
	}

	out := &SearchProductsOutput{}
	out.Body.Results = results
	return out, nil
}
