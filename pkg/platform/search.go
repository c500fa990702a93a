package platform

import (
	"net/url"
	"strings"
)

// searchTemplates build a storefront search-results URL for a query.
var searchTemplates = map[string]func(q string) string{
	"amazon.in": func(q string) string {
		return "https://www.amazon.in/s?k=" + url.QueryEscape(q)
	},
	"flipkart.com": func(q string) string {
		return "https://www.flipkart.com/search?q=" + url.QueryEscape(q)
	},
	"myntra.com": func(q string) string {
		return "https://www.myntra.com/" + url.PathEscape(strings.ReplaceAll(q, " ", "-"))
	},
	"tatacliq.com": func(q string) string {
		return "https://www.tatacliq.com/search/?searchCategory=all&text=" + url.QueryEscape(q)
	},
	"ajio.com": func(q string) string {
		return "https://www.ajio.com/search/?text=" + url.QueryEscape(q)
	},
	"croma.com": func(q string) string {
		return "https://www.croma.com/searchB?q=" + url.QueryEscape(q)
	},
	"reliancedigital.in": func(q string) string {
		return "https://www.reliancedigital.in/search?q=" + url.QueryEscape(q)
	},
	"vijaysales.com": func(q string) string {
		return "https://www.vijaysales.com/search/" + url.PathEscape(q)
	},
}

// SearchURL builds the search-results URL for query on domain. It reports
// false when the platform has no template.
func SearchURL(domain, query string) (string, bool) {
	build, ok := searchTemplates[NormalizeDomain(domain)]
	if !ok {
		return "", false
	}
	return build(strings.TrimSpace(query)), true
}

// FallbackPlatforms are searched when no category-specific choice is available.
var FallbackPlatforms = []string{"amazon.in", "flipkart.com"}

// categoryPlatforms maps a product category keyword to the storefronts that
// commonly stock it.
var categoryPlatforms = []struct {
	keywords  []string
	platforms []string
}{
	{
		keywords:  []string{"electronic", "phone", "laptop", "tv", "television", "headphone", "camera", "appliance"},
		platforms: []string{"amazon.in", "flipkart.com", "tatacliq.com", "croma.com", "reliancedigital.in", "vijaysales.com"},
	},
	{
		keywords:  []string{"fashion", "footwear", "clothing", "shoe", "bag", "watch", "apparel"},
		platforms: []string{"amazon.in", "flipkart.com", "myntra.com", "tatacliq.com", "ajio.com"},
	},
	{
		keywords:  []string{"beauty", "cosmetic", "makeup", "skincare", "fragrance"},
		platforms: []string{"amazon.in", "flipkart.com", "myntra.com"},
	},
	{
		keywords:  []string{"home", "furniture", "kitchen", "decor", "sport", "fitness"},
		platforms: []string{"amazon.in", "flipkart.com", "tatacliq.com"},
	},
}

// ForCategory returns the storefronts that stock a category, falling back
// to FallbackPlatforms for unknown or empty categories.
func ForCategory(category string) []string {
	c := strings.ToLower(category)
	if c != "" {
		for _, entry := range categoryPlatforms {
			for _, kw := range entry.keywords {
				if strings.Contains(c, kw) {
					return append([]string(nil), entry.platforms...)
				}
			}
		}
	}
	return append([]string(nil), FallbackPlatforms...)
}
