// Package core contains the business logic for Shop The Look.
// It does not depend on the HTTP framework or on any concrete upstream client.
//
// Sub-packages:
//
// - domain: search results, shopping domain sets and Pinterest models
// - search: image search to shopping result filtering, with caching
// - pinterest: OAuth flow and pin feed
// - services: thumbnail lookup for results without an image
// - errors: error types the API layer maps to status codes
// - interfaces: contracts for cache, HTTP, logging and upstream APIs
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	svc := search.NewProductSearchService(deps, provider, search.Options{
//	    Domains: domain.NewShoppingDomainSet(domain.DefaultShoppingDomains),
//	})
//	results, err := svc.SearchProducts(ctx, "https://example.com/look.jpg")
package core
