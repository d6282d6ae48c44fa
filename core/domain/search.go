// ABOUTME: Search domain models for image search results and the shopping results derived from them
// ABOUTME: Defines the shopping domain set used to decide whether a result links to a retailer

package domain

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DefaultShoppingDomains is the retailer list used when no shopping_domains
// option is configured.
var DefaultShoppingDomains = []string{
	"amazon.com",
	"ebay.com",
	"etsy.com",
	"asos.com",
	"zara.com",
	"nordstrom.com",
	"macys.com",
	"h&m.com",
	"gap.com",
	"uniqlo.com",
}

// ImageInfo holds the image metadata attached to a search result.
type ImageInfo struct {
	// ThumbnailLink is the URL of a small preview of the image
	ThumbnailLink string
}

// SearchResultItem is a single image search hit as returned by the search provider
type SearchResultItem struct {
	// Title is the page title of the hit
	Title string

	// Link is the URL the hit points to
	Link string

	// Image is nil when the provider sent no image block
	Image *ImageInfo
}

// Thumbnail returns the thumbnail link, or "" when the item has no image data.
func (i SearchResultItem) Thumbnail() string {
	if i.Image == nil {
		return ""
	}
	return i.Image.ThumbnailLink
}

// ShoppingResult is a search hit that links to a known retailer
type ShoppingResult struct {
	Title string `json:"title" doc:"Title of the product page"`
	Link  string `json:"link" doc:"URL of the product page"`
	Image string `json:"image" doc:"Thumbnail URL, empty when unknown"`
}

// ShoppingDomainSet is an immutable set of lower-cased retailer domains.
// The zero value matches nothing.
type ShoppingDomainSet struct {
	domains []string
}

// NewShoppingDomainSet builds a set from the given domains. Entries are
// trimmed and lower-cased; blanks and duplicates are dropped.
func NewShoppingDomainSet(domains []string) ShoppingDomainSet {
	seen := make(map[string]struct{}, len(domains))
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		normalized = append(normalized, d)
	}
	return ShoppingDomainSet{domains: normalized}
}

// Domains returns a copy of the domains in the set
func (s ShoppingDomainSet) Domains() []string {
	out := make([]string, len(s.domains))
	copy(out, s.domains)
	return out
}

// Len returns the number of domains in the set
func (s ShoppingDomainSet) Len() int {
	return len(s.domains)
}

// Matches reports whether link, lower-cased, contains any domain of the set
// as a substring. "amazon.com" therefore also matches
// "https://www.amazon.com.example.org/".
func (s ShoppingDomainSet) Matches(link string) bool {
	lower := strings.ToLower(link)
	for _, d := range s.domains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// MatchesHost reports whether the hostname of link is one of the domains or a
// subdomain of one of them. Internationalized hostnames are compared in their
// punycode form.
func (s ShoppingDomainSet) MatchesHost(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return false
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return false
	}
	if ascii, err := idna.Punycode.ToASCII(host); err == nil {
		host = ascii
	}
	for _, d := range s.domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
