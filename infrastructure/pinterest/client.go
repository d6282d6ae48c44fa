// ABOUTME: Pinterest v5 API client covering the OAuth authorization-code flow and pin listing
// ABOUTME: Uses golang.org/x/oauth2 for consent URLs and token exchange, the shared HTTP client for reads

package pinterest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"shopthelook-api/core/domain"
	coreerrors "shopthelook-api/core/errors"
	"shopthelook-api/core/interfaces"
	"shopthelook-api/pkg/config"
	"shopthelook-api/pkg/utils/text"
	timeutil "shopthelook-api/pkg/utils/time"
)

const (
	apiName         = "pinterest"
	maxErrorBodyLen = 512
)

// Client implements interfaces.PinterestAPI
type Client struct {
	oauth   *oauth2.Config
	apiBase string
	http    interfaces.HTTPClient
	logger  interfaces.Logger
}

// NewClient creates a Pinterest client. httpClient is used both for API reads
// and, through its StdClient, for the token exchange.
func NewClient(cfg config.PinterestConfig, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	oauthBase := strings.TrimRight(cfg.OAuthURL, "/")

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   oauthBase + "/",
				TokenURL:  oauthBase + "/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			// Pinterest expects a comma separated scope list, oauth2 would
			// join multiple entries with spaces
			Scopes: []string{strings.Join(cfg.Scopes, ",")},
		},
		apiBase: strings.TrimRight(cfg.APIBase, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// AuthCodeURL builds the Pinterest consent page URL
func (c *Client) AuthCodeURL(redirectURI, state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
}

// Exchange trades an authorization code for an access token
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
	if c.oauth.ClientID == "" || c.oauth.ClientSecret == "" {
		return nil, &coreerrors.NotConfiguredError{Service: apiName, Missing: "PINTEREST_APP_ID or PINTEREST_APP_SECRET"}
	}

	if c.http != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http.StdClient())
	}

	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}

	tok, err := c.oauth.Exchange(ctx, code, opts...)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			return nil, &coreerrors.ExternalAPIError{
				API:        apiName,
				StatusCode: rerr.Response.StatusCode,
				Message:    retrieveErrorMessage(rerr),
			}
		}
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	token := &domain.PinterestToken{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		token.ExpiresIn = int64(time.Until(tok.Expiry).Round(time.Second) / time.Second)
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		token.Scope = scope
	}

	return token, nil
}

func retrieveErrorMessage(rerr *oauth2.RetrieveError) string {
	if rerr.ErrorDescription != "" {
		return rerr.ErrorDescription
	}
	if rerr.ErrorCode != "" {
		return rerr.ErrorCode
	}
	return truncate(string(rerr.Body))
}

type pinWire struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Link        string           `json:"link"`
	AltText     string           `json:"alt_text"`
	BoardID     string           `json:"board_id"`
	CreatedAt   string           `json:"created_at"`
	Media       *domain.PinMedia `json:"media"`
}

type pinListWire struct {
	Items    []pinWire `json:"items"`
	Bookmark string    `json:"bookmark"`
}

// ListPins returns one page of the authenticated user's pins
func (c *Client) ListPins(ctx context.Context, accessToken string, opts domain.PinListOptions) (*domain.PinPage, error) {
	if c.http == nil {
		return nil, errors.New("pinterest HTTP client not configured")
	}

	endpoint := c.apiBase + "/pins"
	query := url.Values{}
	if opts.Bookmark != "" {
		query.Set("bookmark", opts.Bookmark)
	}
	if opts.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)
	header.Set("Accept", "application/json")

	resp, err := c.http.Get(ctx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pins: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body(), maxErrorBodyLen))
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    apiErrorMessage(body),
		}
	}

	var wire pinListWire
	if err := json.NewDecoder(resp.Body()).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode pins: %w", err)
	}

	page := &domain.PinPage{
		Items:    make([]domain.Pin, 0, len(wire.Items)),
		Bookmark: wire.Bookmark,
	}
	for _, w := range wire.Items {
		page.Items = append(page.Items, domain.Pin{
			ID:          w.ID,
			Title:       text.CleanTitle(w.Title),
			Description: w.Description,
			Link:        w.Link,
			AltText:     w.AltText,
			BoardID:     w.BoardID,
			CreatedAt:   parseCreatedAt(w.CreatedAt),
			Media:       w.Media,
		})
	}

	if c.logger != nil {
		c.logger.Debug("Fetched Pinterest pins", map[string]interface{}{
			"count":    len(page.Items),
			"has_more": page.Bookmark != "",
		})
	}

	return page, nil
}

func parseCreatedAt(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, ok := timeutil.ParseUTC(value)
	if !ok {
		return nil
	}
	return &t
}

// apiErrorMessage pulls "message" out of a Pinterest error body
func apiErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return truncate(string(body))
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen]
	}
	return s
}
