package platform

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	productPathMarkers = []string{"/dp/", "/p/", "/product/", "/buy/", "/pdt/"}
	listingMarkers     = []string{"/search", "/s?", "/s/", "/category", "/browse", "/c/"}

	numericSegment = regexp.MustCompile(`/\d{4,}(/|$)`)
)

// productShapes holds per-platform product-page URL checks applied to the
// lowercased path.
var productShapes = map[string]*regexp.Regexp{
	"amazon.in":          regexp.MustCompile(`/(dp|gp/product)/[a-z0-9]{10}`),
	"amazon.com":         regexp.MustCompile(`/(dp|gp/product)/[a-z0-9]{10}`),
	"flipkart.com":       regexp.MustCompile(`/p/itm[a-z0-9]+`),
	"myntra.com":         regexp.MustCompile(`/\d{5,}/buy$`),
	"ajio.com":           regexp.MustCompile(`/p/[a-z0-9_]+`),
	"tatacliq.com":       regexp.MustCompile(`/p-mp[a-z0-9]+`),
	"croma.com":          regexp.MustCompile(`/p/\d+`),
	"reliancedigital.in": regexp.MustCompile(`/(p/)?\d{6,}`),
	"vijaysales.com":     regexp.MustCompile(`/p/|/\d{4,}`),
	"nykaa.com":          regexp.MustCompile(`/p/\d+`),
	"meesho.com":         regexp.MustCompile(`/p/[a-z0-9]+`),
	"jiomart.com":        regexp.MustCompile(`/p/[a-z0-9/]+`),
	"pepperfry.com":      regexp.MustCompile(`\.html$`),
	"lenskart.com":       regexp.MustCompile(`\.html$`),
	"shopclues.com":      regexp.MustCompile(`\.html$`),
	"firstcry.com":       regexp.MustCompile(`/\d{5,}/product-detail`),
	"boat-lifestyle.com": regexp.MustCompile(`/products/[a-z0-9-]+`),
}

// IsProductURL applies the generic product-page shape rules: https, a
// recognized product path marker and no search, category or browse marker.
func IsProductURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return false
	}

	path := strings.ToLower(u.Path)
	if hasListingMarker(path, u.RawQuery) {
		return false
	}
	for _, m := range productPathMarkers {
		if strings.Contains(path, m) {
			return true
		}
	}
	return false
}

// LooksLikeProductPage applies the platform-specific URL shape check for
// domain, falling back to the generic rules or a long numeric id segment.
func LooksLikeProductPage(domain, rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return false
	}

	path := strings.ToLower(u.Path)
	if hasListingMarker(path, u.RawQuery) {
		return false
	}

	if re, ok := productShapes[NormalizeDomain(domain)]; ok {
		return re.MatchString(path)
	}
	for _, m := range productPathMarkers {
		if strings.Contains(path, m) {
			return true
		}
	}
	return numericSegment.MatchString(path)
}

func hasListingMarker(path, rawQuery string) bool {
	full := path
	if rawQuery != "" {
		full += "?" + strings.ToLower(rawQuery)
	}
	for _, m := range listingMarkers {
		if strings.Contains(full, m) {
			return true
		}
	}
	return path == "/s"
}
