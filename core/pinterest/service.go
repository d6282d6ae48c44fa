// ABOUTME: Pinterest service handles the OAuth flow and feed retrieval for the front end
// ABOUTME: Validates caller input before delegating to the Pinterest API client

package pinterest

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"shopthelook-api/core/domain"
	coreerrors "shopthelook-api/core/errors"
	"shopthelook-api/core/interfaces"
)

const maxPageSize = 250

var errNotConfigured = &coreerrors.NotConfiguredError{
	Service: "pinterest",
	Missing: "PINTEREST_APP_ID or PINTEREST_APP_SECRET",
}

// PinterestService handles Pinterest operations
type PinterestService struct {
	api    interfaces.PinterestAPI
	logger interfaces.Logger

	// newState generates OAuth state values; replaced in tests
	newState func() string
}

// NewPinterestService creates a new Pinterest service instance
func NewPinterestService(api interfaces.PinterestAPI, logger interfaces.Logger) *PinterestService {
	return &PinterestService{
		api:      api,
		logger:   logger,
		newState: func() string { return uuid.New().String() },
	}
}

// BeginAuth returns the consent page URL the browser should be redirected to
func (s *PinterestService) BeginAuth(redirectURI string) (*domain.AuthRequest, error) {
	if err := validateRedirectURI(redirectURI); err != nil {
		return nil, err
	}
	if s.api == nil {
		return nil, errNotConfigured
	}

	state := s.newState()
	return &domain.AuthRequest{
		AuthURL: s.api.AuthCodeURL(redirectURI, state),
		State:   state,
	}, nil
}

// CompleteAuth exchanges the authorization code returned by Pinterest for an
// access token. redirectURI may be empty.
func (s *PinterestService) CompleteAuth(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &coreerrors.ValidationError{Field: "code", Message: "is required"}
	}
	if redirectURI != "" {
		if err := validateRedirectURI(redirectURI); err != nil {
			return nil, err
		}
	}
	if s.api == nil {
		return nil, errNotConfigured
	}

	token, err := s.api.Exchange(ctx, code, redirectURI)
	if err != nil {
		s.logWarn("Pinterest code exchange failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, coreerrors.WrapError(err, "failed to exchange authorization code")
	}

	return token, nil
}

// Feed returns one page of the user's pins. authorization is the value of the
// caller's Authorization header, with or without the "Bearer " prefix.
func (s *PinterestService) Feed(ctx context.Context, authorization string, opts domain.PinListOptions) (*domain.PinPage, error) {
	token := BearerToken(authorization)
	if token == "" {
		return nil, &coreerrors.ValidationError{Field: "Authorization", Message: "access token is required"}
	}
	if opts.PageSize < 0 || opts.PageSize > maxPageSize {
		return nil, &coreerrors.ValidationError{Field: "page_size", Message: "must be between 1 and 250"}
	}
	if s.api == nil {
		return nil, errNotConfigured
	}

	page, err := s.api.ListPins(ctx, token, opts)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list pins")
	}

	if page.Items == nil {
		page.Items = []domain.Pin{}
	}
	return page, nil
}

// BearerToken strips an optional, case-insensitive "Bearer " prefix
func BearerToken(authorization string) string {
	token := strings.TrimSpace(authorization)
	for {
		if strings.EqualFold(token, "bearer") {
			return ""
		}
		if len(token) < 7 || !strings.EqualFold(token[:7], "bearer ") {
			return token
		}
		token = strings.TrimSpace(token[7:])
	}
}

func validateRedirectURI(redirectURI string) error {
	if redirectURI == "" {
		return &coreerrors.ValidationError{Field: "redirect_uri", Message: "is required"}
	}

	u, err := url.Parse(redirectURI)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &coreerrors.ValidationError{Field: "redirect_uri", Message: "must be an absolute http(s) URL"}
	}

	return nil
}

func (s *PinterestService) logWarn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
