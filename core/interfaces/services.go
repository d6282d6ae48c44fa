// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the external APIs and helpers the services depend on

package interfaces

import (
	"context"

	"shopthelook-api/core/domain"
)

// ImageSearchProvider runs an image search against an external search engine
type ImageSearchProvider interface {
	SearchImages(ctx context.Context, query string) ([]domain.SearchResultItem, error)
}

// PinterestAPI is the subset of the Pinterest v5 API the application uses
type PinterestAPI interface {
	// AuthCodeURL builds the consent page URL for the authorization-code flow
	AuthCodeURL(redirectURI, state string) string

	// Exchange trades an authorization code for an access token
	Exchange(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error)

	// ListPins returns one page of the authenticated user's pins
	ListPins(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error)
}

// ThumbnailResolver finds a preview image for a web page
type ThumbnailResolver interface {
	FindThumbnail(ctx context.Context, pageURL string) (string, error)
}

// ProductSearcher is implemented by the product search service
type ProductSearcher interface {
	SearchProducts(ctx context.Context, imageURL string) ([]domain.ShoppingResult, error)
}

// PinterestGateway is implemented by the Pinterest service
type PinterestGateway interface {
	BeginAuth(redirectURI string) (*domain.AuthRequest, error)
	CompleteAuth(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error)
	Feed(ctx context.Context, authorization string, opts domain.PinListOptions) (*domain.PinPage, error)
}
