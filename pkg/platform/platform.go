// Package platform holds the static knowledge foxdeal has about e-commerce
// storefronts: extraction hints, trust ratings, trusted sellers, search URL
// templates and product-page URL shapes.
package platform

import (
	"net/url"
	"strings"
	"time"
)

// DefaultWaitTime is the render wait used for hosts outside the known table.
const DefaultWaitTime = 3 * time.Second

// Config describes how to extract from one platform.
type Config struct {
	Domain     string
	Name       string
	WaitTime   time.Duration
	PriceTerms []string
	Indian     bool
	Known      bool
}

// AcceptLanguage is the locale header sent to the extraction service.
func (c Config) AcceptLanguage() string {
	if c.Indian {
		return "en-IN,en;q=0.9"
	}
	return "en-US,en;q=0.9"
}

// DefaultCurrency is the currency assumed when extraction returns none.
func (c Config) DefaultCurrency() string {
	if c.Indian {
		return "INR"
	}
	return "USD"
}

// known is matched in order, so more specific domains come first.
var known = []Config{
	{Domain: "amazon.in", Name: "Amazon India", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "MRP", "Deal Price", "Offer Price", "Sale Price"}, Indian: true},
	{Domain: "flipkart.com", Name: "Flipkart", WaitTime: 6 * time.Second, PriceTerms: []string{"Price", "Special Price", "Deal Price"}, Indian: true},
	{Domain: "myntra.com", Name: "Myntra", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Discounted Price", "MRP"}, Indian: true},
	{Domain: "ajio.com", Name: "Ajio", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Offer Price"}, Indian: true},
	{Domain: "tatacliq.com", Name: "Tata CLiQ", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Special Price", "Offer Price"}, Indian: true},
	{Domain: "croma.com", Name: "Croma", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Special Price", "MRP"}, Indian: true},
	{Domain: "reliancedigital.in", Name: "Reliance Digital", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Offer Price", "Deal Price"}, Indian: true},
	{Domain: "vijaysales.com", Name: "Vijay Sales", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Special Price"}, Indian: true},
	{Domain: "snapdeal.com", Name: "Snapdeal", WaitTime: 5 * time.Second, PriceTerms: []string{"Price", "Selling Price"}, Indian: true},
	{Domain: "amazon.com", Name: "Amazon US", WaitTime: 3 * time.Second, PriceTerms: []string{"Price"}},
	{Domain: "ebay.com", Name: "eBay", WaitTime: 3 * time.Second, PriceTerms: []string{"Price"}},
	{Domain: "walmart.com", Name: "Walmart", WaitTime: 3 * time.Second, PriceTerms: []string{"Price", "Sale Price"}},
}

// allowList is the set of storefronts discovery searches, in priority order.
var allowList = []struct {
	Domain string
	Name   string
}{
	{"amazon.in", "Amazon India"},
	{"flipkart.com", "Flipkart"},
	{"myntra.com", "Myntra"},
	{"ajio.com", "Ajio"},
	{"tatacliq.com", "Tata CLiQ"},
	{"croma.com", "Croma"},
	{"reliancedigital.in", "Reliance Digital"},
	{"vijaysales.com", "Vijay Sales"},
	{"meesho.com", "Meesho"},
	{"jiomart.com", "JioMart"},
	{"nykaa.com", "Nykaa"},
	{"pepperfry.com", "Pepperfry"},
	{"firstcry.com", "FirstCry"},
	{"lenskart.com", "Lenskart"},
	{"boat-lifestyle.com", "boAt"},
	{"shopclues.com", "ShopClues"},
}

// Detect returns the extraction config for rawURL. Hosts outside the known
// table get a generic config derived from the hostname.
func Detect(rawURL string) Config {
	host := Hostname(rawURL)
	for _, c := range known {
		if host == c.Domain || strings.HasSuffix(host, "."+c.Domain) {
			c.Known = true
			return c
		}
	}

	if host == "" {
		return Config{
			Domain:     "other",
			Name:       "E-commerce Site",
			WaitTime:   DefaultWaitTime,
			PriceTerms: []string{"Price"},
		}
	}

	return Config{
		Domain:     host,
		Name:       displayName(host),
		WaitTime:   DefaultWaitTime,
		PriceTerms: []string{"Price", "MRP", "Sale Price", "Offer Price"},
		Indian:     strings.HasSuffix(host, ".in") || strings.Contains(host, ".in."),
	}
}

// Hostname returns the lowercased host of rawURL without a leading "www.".
// It returns "" when rawURL cannot be parsed or has no host.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// NormalizeDomain strips scheme, "www." and any path from a domain-ish string.
func NormalizeDomain(s string) string {
	d := strings.ToLower(strings.TrimSpace(s))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

// Lookup maps a URL to an allow-listed storefront.
func Lookup(rawURL string) (domain, name string, ok bool) {
	host := Hostname(rawURL)
	if host == "" {
		return "", "", false
	}
	for _, p := range allowList {
		if host == p.Domain || strings.HasSuffix(host, "."+p.Domain) {
			return p.Domain, p.Name, true
		}
	}
	return "", "", false
}

// AllowList returns the allow-listed storefront domains in priority order.
func AllowList() []string {
	out := make([]string, len(allowList))
	for i, p := range allowList {
		out[i] = p.Domain
	}
	return out
}

// Name returns the display name of a domain.
func Name(domain string) string {
	d := NormalizeDomain(domain)
	for _, p := range allowList {
		if p.Domain == d {
			return p.Name
		}
	}
	for _, c := range known {
		if c.Domain == d {
			return c.Name
		}
	}
	return displayName(d)
}

// SamePlatform reports whether rawURL is hosted on domain.
func SamePlatform(rawURL, domain string) bool {
	d := NormalizeDomain(domain)
	if d == "" {
		return false
	}
	host := Hostname(rawURL)
	return host == d || strings.HasSuffix(host, "."+d)
}

func displayName(host string) string {
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return host
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
