// ABOUTME: Logging round tripper for outbound HTTP calls
// ABOUTME: Records method, URL, status and duration of every request made to third-party APIs

package standard

import (
	"net/http"
	"time"

	"shopthelook-api/core/interfaces"
)

// redactedParams are query parameters that carry credentials
var redactedParams = []string{"key", "client_secret", "access_token"}

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := redactURL(req)

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    target,
		"host":   req.URL.Host,
	})

	resp, err := t.Transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      target,
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":   req.Method,
		"url":      target,
		"status":   resp.StatusCode,
		"duration": duration.String(),
	})

	return resp, nil
}

func redactURL(req *http.Request) string {
	u := *req.URL
	q := u.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
