package handlers

import (
	"context"

	"shopthelook-api/core/domain"
)

type mockSearcher struct {
	searchFunc func(ctx context.Context, imageURL string) ([]domain.ShoppingResult, error)
}

func (m *mockSearcher) SearchProducts(ctx context.Context, imageURL string) ([]domain.ShoppingResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, imageURL)
	}
	return nil, nil
}

type mockGateway struct {
	beginAuthFunc    func(redirectURI string) (*domain.AuthRequest, error)
	completeAuthFunc func(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error)
	feedFunc         func(ctx context.Context, authorization string, opts domain.PinListOptions) (*domain.PinPage, error)
}

func (m *mockGateway) BeginAuth(redirectURI string) (*domain.AuthRequest, error) {
	if m.beginAuthFunc != nil {
		return m.beginAuthFunc(redirectURI)
	}
	return &domain.AuthRequest{}, nil
}

func (m *mockGateway) CompleteAuth(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
	if m.completeAuthFunc != nil {
		return m.completeAuthFunc(ctx, code, redirectURI)
	}
	return &domain.PinterestToken{}, nil
}

func (m *mockGateway) Feed(ctx context.Context, authorization string, opts domain.PinListOptions) (*domain.PinPage, error) {
	if m.feedFunc != nil {
		return m.feedFunc(ctx, authorization, opts)
	}
	return &domain.PinPage{Items: []domain.Pin{}}, nil
}
