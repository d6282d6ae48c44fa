// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides HTTP functionality with exponential backoff for resilient external API calls

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopthelook-api/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "ShopTheLookAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// When logger is non-nil every outbound request is logged at debug level.
func NewStandardHTTPClient(timeout time.Duration, logger interfaces.Logger) *StandardHTTPClient {
	var transport http.RoundTripper = http.DefaultTransport
	if logger != nil {
		transport = &LoggingRoundTripper{Transport: transport, Logger: logger}
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &userAgentTransport{next: transport},
		},
	}
}

// StdClient returns the underlying *http.Client
func (c *StandardHTTPClient) StdClient() *http.Client {
	return c.client
}

// Get performs an HTTP GET request, retrying transport errors and 5xx responses
func (c *StandardHTTPClient) Get(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Keep the last 5xx response so the caller can inspect it
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		if attempt < maxRetries-1 {
			resp.Body.Close()
			resp = nil
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// userAgentTransport sets a default User-Agent on requests that lack one
type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", userAgent)
	}
	return t.next.RoundTrip(req)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
