package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopthelook-api/core/domain"
)

func defaultDomains() domain.ShoppingDomainSet {
	return domain.NewShoppingDomainSet(domain.DefaultShoppingDomains)
}

func TestFilterShoppingResults_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.SearchResultItem
		want  []domain.ShoppingResult
	}{
		{
			name: "amazon hit with thumbnail",
			items: []domain.SearchResultItem{
				{Title: "Shoes", Link: "https://www.amazon.com/shoes", Image: &domain.ImageInfo{ThumbnailLink: "http://t/1"}},
			},
			want: []domain.ShoppingResult{
				{Title: "Shoes", Link: "https://www.amazon.com/shoes", Image: "http://t/1"},
			},
		},
		{
			name: "non-shopping domain is dropped",
			items: []domain.SearchResultItem{
				{Title: "Blog Post", Link: "https://medium.com/post"},
			},
			want: []domain.ShoppingResult{},
		},
		{
			name:  "empty input",
			items: []domain.SearchResultItem{},
			want:  []domain.ShoppingResult{},
		},
		{
			name:  "nil input",
			items: nil,
			want:  []domain.ShoppingResult{},
		},
		{
			name: "two matches keep input order",
			items: []domain.SearchResultItem{
				{Title: "Mug", Link: "https://www.etsy.com/listing/1"},
				{Title: "Blog", Link: "https://blog.example.com/"},
				{Title: "Jeans", Link: "https://www.gap.com/jeans"},
			},
			want: []domain.ShoppingResult{
				{Title: "Mug", Link: "https://www.etsy.com/listing/1"},
				{Title: "Jeans", Link: "https://www.gap.com/jeans"},
			},
		},
		{
			name: "missing image becomes empty string",
			items: []domain.SearchResultItem{
				{Title: "Dress", Link: "https://www.zara.com/dress"},
			},
			want: []domain.ShoppingResult{
				{Title: "Dress", Link: "https://www.zara.com/dress", Image: ""},
			},
		},
		{
			name: "missing link is skipped",
			items: []domain.SearchResultItem{
				{Title: "No link"},
				{Title: "Coat", Link: "https://www.uniqlo.com/coat"},
			},
			want: []domain.ShoppingResult{
				{Title: "Coat", Link: "https://www.uniqlo.com/coat"},
			},
		},
		{
			name: "matching is case-insensitive and keeps original link",
			items: []domain.SearchResultItem{
				{Title: "Bag", Link: "HTTPS://WWW.NORDSTROM.COM/Bag"},
			},
			want: []domain.ShoppingResult{
				{Title: "Bag", Link: "HTTPS://WWW.NORDSTROM.COM/Bag"},
			},
		},
		{
			name: "missing title defaults to empty",
			items: []domain.SearchResultItem{
				{Link: "https://www.ebay.com/itm/2"},
			},
			want: []domain.ShoppingResult{
				{Link: "https://www.ebay.com/itm/2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterShoppingResults(tt.items, defaultDomains())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterShoppingResults_Properties(t *testing.T) {
	domains := defaultDomains()
	items := []domain.SearchResultItem{
		{Title: "a", Link: "https://www.amazon.com/a"},
		{Title: "b", Link: "https://example.org/b"},
		{Title: "c", Link: "https://www.amazon.com.evil.example/c"},
		{Title: "d", Link: "https://www.macys.com/d", Image: &domain.ImageInfo{}},
		{Title: "e", Link: "https://shop.asos.com/e", Image: &domain.ImageInfo{ThumbnailLink: "http://t/e"}},
		{Title: "f", Link: ""},
	}

	results := FilterShoppingResults(items, domains)

	assert.LessOrEqual(t, len(results), len(items))

	for _, r := range results {
		assert.True(t, domains.Matches(r.Link), "result %q should match a shopping domain", r.Link)
	}

	var titles []string
	for _, r := range results {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"a", "c", "d", "e"}, titles)

	// Filtering an already filtered set returns it unchanged.
	again := make([]domain.SearchResultItem, 0, len(results))
	for _, r := range results {
		item := domain.SearchResultItem{Title: r.Title, Link: r.Link}
		if r.Image != "" {
			item.Image = &domain.ImageInfo{ThumbnailLink: r.Image}
		}
		again = append(again, item)
	}
	assert.Equal(t, results, FilterShoppingResults(again, domains))
}

func TestFilterShoppingResults_CustomDomains(t *testing.T) {
	domains := domain.NewShoppingDomainSet([]string{"Example.SHOP"})
	items := []domain.SearchResultItem{
		{Title: "x", Link: "https://www.amazon.com/x"},
		{Title: "y", Link: "https://www.example.shop/y"},
	}

	got := FilterShoppingResults(items, domains)

	assert.Equal(t, []domain.ShoppingResult{{Title: "y", Link: "https://www.example.shop/y"}}, got)
}

func TestFilterShoppingResultsByHost_RejectsLookalikes(t *testing.T) {
	items := []domain.SearchResultItem{
		{Title: "real", Link: "https://www.amazon.com/real"},
		{Title: "fake", Link: "https://www.amazon.com.evil.example/fake"},
	}

	substring := FilterShoppingResults(items, defaultDomains())
	strict := FilterShoppingResultsByHost(items, defaultDomains())

	assert.Len(t, substring, 2)
	assert.Equal(t, []domain.ShoppingResult{{Title: "real", Link: "https://www.amazon.com/real"}}, strict)
}
