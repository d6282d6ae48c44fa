package interfaces

import (
	"context"
	"io"
	"net/http"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// header may be nil; its values are added to the outgoing request.
	Get(ctx context.Context, url string, header http.Header) (Response, error)

	// StdClient returns the underlying *http.Client for libraries that
	// need one (OAuth2, Google API clients).
	StdClient() *http.Client
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
