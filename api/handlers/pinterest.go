// ABOUTME: Pinterest handlers for the Huma API
// ABOUTME: Provides the OAuth start and callback endpoints and the pin feed proxy

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"shopthelook-api/core/domain"
	"shopthelook-api/core/interfaces"
)

// PinterestHandler handles Pinterest-related HTTP requests
type PinterestHandler struct {
	service interfaces.PinterestGateway
}

// NewPinterestHandler creates a new Pinterest handler
func NewPinterestHandler(service interfaces.PinterestGateway) *PinterestHandler {
	return &PinterestHandler{service: service}
}

// RegisterRoutes registers all Pinterest routes
func (h *PinterestHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pinterestAuth",
		Method:      http.MethodGet,
		Path:        "/api/pinterest/auth",
		Summary:     "Start Pinterest login",
		Description: "Returns the Pinterest consent URL the browser should be sent to",
		Tags:        []string{"Pinterest"},
	}, h.Auth)

	huma.Register(api, huma.Operation{
		OperationID: "pinterestCallback",
		Method:      http.MethodGet,
		Path:        "/api/pinterest/callback",
		Summary:     "Finish Pinterest login",
		Description: "Exchanges the authorization code from Pinterest for an access token",
		Tags:        []string{"Pinterest"},
	}, h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "pinterestFeed",
		Method:      http.MethodGet,
		Path:        "/api/pinterest/feed",
		Summary:     "List the user's pins",
		Description: "Proxies one page of the authenticated user's pins",
		Tags:        []string{"Pinterest"},
	}, h.Feed)
}

// PinterestAuthInput defines the input for the Auth operation
type PinterestAuthInput struct {
	RedirectURI string `query:"redirect_uri" required:"true" doc:"Where Pinterest sends the user after consent"`
}

// PinterestAuthOutput defines the output for the Auth operation
type PinterestAuthOutput struct {
	Body domain.AuthRequest
}

// Auth handles GET /api/pinterest/auth
func (h *PinterestHandler) Auth(ctx context.Context, input *PinterestAuthInput) (*PinterestAuthOutput, error) {
	req, err := h.service.BeginAuth(input.RedirectURI)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PinterestAuthOutput{Body: *req}, nil
}

// PinterestCallbackInput defines the input for the Callback operation
type PinterestCallbackInput struct {
	Code        string `query:"code" required:"true" doc:"Authorization code issued by Pinterest"`
	RedirectURI string `query:"redirect_uri" doc:"Redirect URI used when the flow started"`
}

// PinterestCallbackOutput defines the output for the Callback operation
type PinterestCallbackOutput struct {
	Body domain.PinterestToken
}

// Callback handles GET /api/pinterest/callback
func (h *PinterestHandler) Callback(ctx context.Context, input *PinterestCallbackInput) (*PinterestCallbackOutput, error) {
	token, err := h.service.CompleteAuth(ctx, input.Code, input.RedirectURI)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PinterestCallbackOutput{Body: *token}, nil
}

// PinterestFeedInput defines the input for the Feed operation
type PinterestFeedInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Pinterest access token, with or without the Bearer prefix"`
	Bookmark      string `query:"bookmark" doc:"Cursor returned by the previous page"`
	PageSize      int    `query:"page_size" doc:"Pins per page, 1 to 250"`
}

// PinterestFeedOutput defines the output for the Feed operation
type PinterestFeedOutput struct {
	Body domain.PinPage
}

// Feed handles GET /api/pinterest/feed
func (h *PinterestHandler) Feed(ctx context.Context, input *PinterestFeedInput) (*PinterestFeedOutput, error) {
	page, err := h.service.Feed(ctx, input.Authorization, domain.PinListOptions{
		Bookmark: input.Bookmark,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PinterestFeedOutput{Body: *page}, nil
}
