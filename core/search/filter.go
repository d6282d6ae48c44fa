// ABOUTME: Shopping-result filter that keeps image search hits pointing at known retailers
// ABOUTME: Projects each kept hit to the reduced title/link/image shape returned to clients

package search

import (
	"shopthelook-api/core/domain"
)

// FilterShoppingResults keeps the items whose link contains one of the
// shopping domains (case-insensitive substring match) and projects them to
// ShoppingResult. Input order is preserved. Items without a link are skipped
// and a missing image becomes "". The result is never nil.
func FilterShoppingResults(items []domain.SearchResultItem, domains domain.ShoppingDomainSet) []domain.ShoppingResult {
	return filterWith(items, domains.Matches)
}

// FilterShoppingResultsByHost is FilterShoppingResults with exact hostname
// matching: the link's host must equal a domain or be a subdomain of it.
func FilterShoppingResultsByHost(items []domain.SearchResultItem, domains domain.ShoppingDomainSet) []domain.ShoppingResult {
	return filterWith(items, domains.MatchesHost)
}

func filterWith(items []domain.SearchResultItem, match func(link string) bool) []domain.ShoppingResult {
	results := make([]domain.ShoppingResult, 0, len(items))
	for _, item := range items {
		if item.Link == "" || !match(item.Link) {
			continue
		}
		results = append(results, domain.ShoppingResult{
			Title: item.Title,
			Link:  item.Link,
			Image: item.Thumbnail(),
		})
	}
	return results
}
