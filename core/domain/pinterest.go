// ABOUTME: Pinterest domain models for the OAuth flow and the user's pins
// ABOUTME: Mirrors the subset of the Pinterest v5 payloads that the front end consumes

package domain

import "time"

// AuthRequest is the start of an OAuth authorization-code flow
type AuthRequest struct {
	AuthURL string `json:"auth_url" doc:"URL the browser should be sent to"`
	State   string `json:"state" doc:"Opaque CSRF state echoed back by Pinterest"`
}

// PinterestToken is the result of exchanging an authorization code
type PinterestToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty" doc:"Seconds until the access token expires"`
	Scope        string `json:"scope,omitempty"`
}

// PinImage is one rendition of a pin image
type PinImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// PinMedia describes the media attached to a pin. Images is keyed by size,
// e.g. "150x150", "600x", "originals".
type PinMedia struct {
	MediaType string              `json:"media_type"`
	Images    map[string]PinImage `json:"images,omitempty"`
}

// Pin is a single pin from the user's feed
type Pin struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	AltText     string     `json:"alt_text"`
	BoardID     string     `json:"board_id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Media       *PinMedia  `json:"media,omitempty"`
}

// PinPage is one page of pins plus the cursor for the next one
type PinPage struct {
	Items    []Pin  `json:"items"`
	Bookmark string `json:"bookmark,omitempty" doc:"Cursor for the next page, empty on the last page"`
}

// PinListOptions controls pagination of the pin feed
type PinListOptions struct {
	Bookmark string
	PageSize int
}
