package search

import (
	"context"
	"sync"
	"time"

	"shopthelook-api/core/domain"
)

// mockProvider is a mock implementation of the ImageSearchProvider interface
type mockProvider struct {
	searchFunc func(ctx context.Context, query string) ([]domain.SearchResultItem, error)
	calls      int
}

func (m *mockProvider) SearchImages(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockThumbnails is a mock implementation of the ThumbnailResolver interface
type mockThumbnails struct {
	mu       sync.Mutex
	findFunc func(ctx context.Context, pageURL string) (string, error)
	looked   []string
}

func (m *mockThumbnails) FindThumbnail(ctx context.Context, pageURL string) (string, error) {
	m.mu.Lock()
	m.looked = append(m.looked, pageURL)
	m.mu.Unlock()
	if m.findFunc != nil {
		return m.findFunc(ctx, pageURL)
	}
	return "", nil
}

// mockLogger records log calls
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }
