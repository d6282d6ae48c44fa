// Package api provides the HTTP API layer for Shop The Look.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, middleware chain and route table
// - handlers/: HTTP request handlers for health, search and Pinterest
// - middleware/: request logging and per-IP rate limiting
//
// The OpenAPI document is served at /openapi.json and the interactive
// reference at /docs.
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	defer stop()
//
//	api.RegisterRoutes(humaAPI, api.Services{
//	    Search:    searchService,
//	    Pinterest: pinterestService,
//	})
//
//	http.ListenAndServe(":5000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Validation failures map to 400,
// missing upstream credentials to 503, and upstream failures to 503, 429 or
// 400 depending on the upstream status.
package api
