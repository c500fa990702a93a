package platform

import "strings"

// DefaultTrust is the trust rating of platforms missing from the table.
const DefaultTrust = 5.0

// trust ratings on a 0-10 scale.
var trust = map[string]float64{
	"amazon.in":     10.0,
	"amazon.com":    9.5,
	"flipkart.com":  9.0,
	"snapdeal.com":  7.0,
	"paytmmall.com": 6.0,
	"shopclues.com": 5.5,

	"tatacliq.com": 9.0,
	"myntra.com":   8.5,
	"ajio.com":     8.0,
	"meesho.com":   6.5,
	"bewakoof.com": 6.0,
	"zivame.com":   6.0,

	"nykaa.com":     8.5,
	"pharmeasy.com": 6.5,
	"1mg.com":       6.5,

	"bigbasket.com": 8.0,
	"blinkit.com":   7.5,
	"swiggy.com":    7.5,
	"zepto.com":     7.5,
	"jiomart.com":   7.0,

	"lenskart.com":       8.0,
	"firstcry.com":       8.0,
	"pepperfry.com":      7.0,
	"boat-lifestyle.com": 7.0,

	"ebay.com":    7.0,
	"walmart.com": 9.0,
	"target.com":  8.5,
	"bestbuy.com": 8.5,
}

// Trust returns the 0-10 trust rating of a domain.
func Trust(domain string) float64 {
	d := NormalizeDomain(domain)
	if d == "" {
		return DefaultTrust
	}
	if t, ok := trust[d]; ok {
		return t
	}
	return DefaultTrust
}

var trustedSellers = map[string][]string{
	"amazon": {
		"cloudtail",
		"appario",
		"amazon retail",
		"cocoblu retail",
		"prione retail",
		"amazon global store",
	},
	"flipkart": {
		"flipkart retail",
		"ws retail",
		"omnitech retail",
		"retail net",
		"flipkart assured",
	},
}

// TrustedSellers returns the lowercase seller names known to be first-party
// or authorized on the platform hosting domain.
func TrustedSellers(domain string) []string {
	d := strings.ToLower(domain)
	for key, sellers := range trustedSellers {
		if strings.Contains(d, key) {
			return sellers
		}
	}
	return nil
}
