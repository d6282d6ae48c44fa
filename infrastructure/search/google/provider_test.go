package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "shopthelook-api/core/errors"
	"shopthelook-api/pkg/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc, cfg config.GoogleConfig) *Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.Endpoint = server.URL + "/"
	p, err := NewProvider(context.Background(), cfg, server.Client(), nil)
	require.NoError(t, err)
	return p
}

func TestSearchImages_SendsQueryAndMapsItems(t *testing.T) {
	var captured url.Values
	var path string

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		captured = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"title": "Red Dress", "link": "https://www.amazon.com/dp/1", "image": {"thumbnailLink": "https://t/1.jpg"}},
				{"title": "Blog", "link": "https://blog.example.com/post"}
			]
		}`))
	}, config.GoogleConfig{APIKey: "k-123", SearchEngineID: "cx-9"})

	items, err := p.SearchImages(context.Background(), "https://img.example/dress.jpg")

	require.NoError(t, err)
	assert.Equal(t, "/customsearch/v1", path)
	assert.Equal(t, "k-123", captured.Get("key"))
	assert.Equal(t, "cx-9", captured.Get("cx"))
	assert.Equal(t, "https://img.example/dress.jpg", captured.Get("q"))
	assert.Equal(t, "image", captured.Get("searchType"))

	require.Len(t, items, 2)
	assert.Equal(t, "Red Dress", items[0].Title)
	assert.Equal(t, "https://www.amazon.com/dp/1", items[0].Link)
	require.NotNil(t, items[0].Image)
	assert.Equal(t, "https://t/1.jpg", items[0].Image.ThumbnailLink)
	assert.Nil(t, items[1].Image)
}

func TestSearchImages_NoItems(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"searchInformation": {"totalResults": "0"}}`))
	}, config.GoogleConfig{APIKey: "k", SearchEngineID: "cx"})

	items, err := p.SearchImages(context.Background(), "https://img.example/x.jpg")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearchImages_MapsAPIError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "Quota exceeded"}}`))
	}, config.GoogleConfig{APIKey: "k", SearchEngineID: "cx"})

	_, err := p.SearchImages(context.Background(), "https://img.example/x.jpg")

	apiErr, ok := coreerrors.AsExternalAPI(err)
	require.True(t, ok, "expected ExternalAPIError, got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, apiName, apiErr.API)
	assert.Equal(t, "Quota exceeded", apiErr.Message)
}

func TestSearchImages_NotConfigured(t *testing.T) {
	called := false
	handler := func(w http.ResponseWriter, r *http.Request) { called = true }

	tests := []struct {
		name string
		cfg  config.GoogleConfig
	}{
		{"missing key", config.GoogleConfig{SearchEngineID: "cx"}},
		{"missing engine", config.GoogleConfig{APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, handler, tt.cfg)

			_, err := p.SearchImages(context.Background(), "https://img.example/x.jpg")

			assert.True(t, coreerrors.IsNotConfigured(err))
		})
	}
	assert.False(t, called)
}

func TestSearchImages_CleansTitles(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [{"title": "Tom &amp; Co\n  Tote", "link": "https://www.etsy.com/listing/2"}]}`))
	}, config.GoogleConfig{APIKey: "k", SearchEngineID: "cx"})

	items, err := p.SearchImages(context.Background(), "https://img.example/x.jpg")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tom & Co Tote", items[0].Title)
}
