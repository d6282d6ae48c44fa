package pinterest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopthelook-api/core/domain"
	coreerrors "shopthelook-api/core/errors"
)

// mockAPI is a mock implementation of the PinterestAPI interface
type mockAPI struct {
	authCodeURLFunc func(redirectURI, state string) string
	exchangeFunc    func(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error)
	listPinsFunc    func(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error)
}

func (m *mockAPI) AuthCodeURL(redirectURI, state string) string {
	if m.authCodeURLFunc != nil {
		return m.authCodeURLFunc(redirectURI, state)
	}
	return ""
}

func (m *mockAPI) Exchange(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
	if m.exchangeFunc != nil {
		return m.exchangeFunc(ctx, code, redirectURI)
	}
	return nil, nil
}

func (m *mockAPI) ListPins(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error) {
	if m.listPinsFunc != nil {
		return m.listPinsFunc(ctx, accessToken, opts)
	}
	return &domain.PinPage{}, nil
}

func TestBeginAuth_BuildsURLWithState(t *testing.T) {
	api := &mockAPI{
		authCodeURLFunc: func(redirectURI, state string) string {
			return "https://www.pinterest.com/oauth/?redirect_uri=" + redirectURI + "&state=" + state
		},
	}
	service := NewPinterestService(api, nil)
	service.newState = func() string { return "fixed-state" }

	req, err := service.BeginAuth("http://localhost:3000")

	require.NoError(t, err)
	assert.Equal(t, "fixed-state", req.State)
	assert.Equal(t, "https://www.pinterest.com/oauth/?redirect_uri=http://localhost:3000&state=fixed-state", req.AuthURL)
}

func TestBeginAuth_GeneratesUniqueStates(t *testing.T) {
	service := NewPinterestService(&mockAPI{}, nil)

	first, err := service.BeginAuth("https://app.example.com/")
	require.NoError(t, err)
	second, err := service.BeginAuth("https://app.example.com/")
	require.NoError(t, err)

	assert.NotEmpty(t, first.State)
	assert.NotEqual(t, first.State, second.State)
}

func TestBeginAuth_ValidatesRedirectURI(t *testing.T) {
	service := NewPinterestService(&mockAPI{}, nil)

	for _, uri := range []string{"", "/relative", "ftp://example.com/", "localhost:3000"} {
		_, err := service.BeginAuth(uri)
		assert.True(t, coreerrors.IsValidation(err), "redirect_uri %q should be rejected", uri)
	}
}

func TestCompleteAuth_RequiresCode(t *testing.T) {
	service := NewPinterestService(&mockAPI{}, nil)

	_, err := service.CompleteAuth(context.Background(), "  ", "")

	assert.True(t, coreerrors.IsValidation(err))
}

func TestCompleteAuth_ReturnsToken(t *testing.T) {
	api := &mockAPI{
		exchangeFunc: func(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
			assert.Equal(t, "abc", code)
			assert.Equal(t, "http://localhost:3000", redirectURI)
			return &domain.PinterestToken{AccessToken: "pina_123", TokenType: "bearer"}, nil
		},
	}
	service := NewPinterestService(api, nil)

	token, err := service.CompleteAuth(context.Background(), "abc", "http://localhost:3000")

	require.NoError(t, err)
	assert.Equal(t, "pina_123", token.AccessToken)
}

func TestCompleteAuth_WrapsExchangeError(t *testing.T) {
	api := &mockAPI{
		exchangeFunc: func(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
			return nil, &coreerrors.ExternalAPIError{StatusCode: 400, API: "pinterest", Message: "invalid_grant"}
		},
	}
	service := NewPinterestService(api, nil)

	_, err := service.CompleteAuth(context.Background(), "abc", "")

	require.Error(t, err)
	assert.True(t, coreerrors.IsExternalAPI(err))
}

func TestFeed_StripsBearerPrefix(t *testing.T) {
	var gotToken string
	api := &mockAPI{
		listPinsFunc: func(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error) {
			gotToken = accessToken
			return &domain.PinPage{Items: []domain.Pin{{ID: "1"}}, Bookmark: "next"}, nil
		},
	}
	service := NewPinterestService(api, nil)

	page, err := service.Feed(context.Background(), "Bearer pina_123", domain.PinListOptions{})

	require.NoError(t, err)
	assert.Equal(t, "pina_123", gotToken)
	assert.Equal(t, "next", page.Bookmark)
	assert.Len(t, page.Items, 1)
}

func TestFeed_NilItemsBecomeEmpty(t *testing.T) {
	service := NewPinterestService(&mockAPI{}, nil)

	page, err := service.Feed(context.Background(), "pina_123", domain.PinListOptions{})

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
}

func TestFeed_Validation(t *testing.T) {
	service := NewPinterestService(&mockAPI{}, nil)
	ctx := context.Background()

	_, err := service.Feed(ctx, "", domain.PinListOptions{})
	assert.True(t, coreerrors.IsValidation(err))

	_, err = service.Feed(ctx, "Bearer ", domain.PinListOptions{})
	assert.True(t, coreerrors.IsValidation(err))

	_, err = service.Feed(ctx, "tok", domain.PinListOptions{PageSize: 251})
	assert.True(t, coreerrors.IsValidation(err))
}

func TestFeed_WrapsAPIError(t *testing.T) {
	api := &mockAPI{
		listPinsFunc: func(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error) {
			return nil, errors.New("connection reset")
		},
	}
	service := NewPinterestService(api, nil)

	_, err := service.Feed(context.Background(), "tok", domain.PinListOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list pins")
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"pina_1":               "pina_1",
		"Bearer pina_1":        "pina_1",
		"bearer pina_1":        "pina_1",
		"Bearer Bearer pina_1": "pina_1",
		"  Bearer  pina_1 ":    "pina_1",
		"Bearer":               "",
		"":                     "",
	}

	for in, want := range tests {
		assert.Equal(t, want, BearerToken(in), "BearerToken(%q)", in)
	}
}

func TestService_WithoutClientIsNotConfigured(t *testing.T) {
	service := NewPinterestService(nil, nil)
	ctx := context.Background()

	_, err := service.BeginAuth("https://app.example/callback")
	assert.True(t, coreerrors.IsNotConfigured(err))

	_, err = service.CompleteAuth(ctx, "code", "")
	assert.True(t, coreerrors.IsNotConfigured(err))

	_, err = service.Feed(ctx, "Bearer tok", domain.PinListOptions{})
	assert.True(t, coreerrors.IsNotConfigured(err))
}
