package extract

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/pkg/money"
)

// Page is the readable content of a fetched product page.
type Page struct {
	URL        string
	Title      string
	Text       string
	Structured Raw
}

// ReadPage collects the title, visible text and any schema.org or
// OpenGraph product data from a parsed document. Text is cut to maxChars.
func ReadPage(doc *goquery.Selection, pageURL string, maxChars int) Page {
	p := Page{
		URL:   pageURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	p.Structured = fromJSONLD(doc)
	fillFromMeta(doc, &p.Structured)
	if p.Structured.ProductName == "" {
		p.Structured.ProductName = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, svg, iframe, nav, footer").Remove()
	text := strings.Join(strings.Fields(body.Text()), " ")
	if maxChars > 0 && len(text) > maxChars {
		text = truncateUTF8(text, maxChars)
	}
	p.Text = text

	return p
}

func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// fromJSONLD reads the first schema.org Product in ld+json scripts.
func fromJSONLD(doc *goquery.Selection) Raw {
	var raw Raw
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v any
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return true
		}
		product, ok := findProduct(v)
		if !ok {
			return true
		}
		raw = productToRaw(product)
		return false
	})
	return raw
}

func findProduct(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if p, ok := findProduct(item); ok {
				return p, true
			}
		}
	case map[string]any:
		if isType(t["@type"], "Product") {
			return t, true
		}
		if g, ok := t["@graph"]; ok {
			return findProduct(g)
		}
	}
	return nil, false
}

func isType(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return strings.EqualFold(t, want)
	case []any:
		for _, item := range t {
			if isType(item, want) {
				return true
			}
		}
	}
	return false
}

func productToRaw(p map[string]any) Raw {
	raw := Raw{
		ProductName:     str(p["name"]),
		ProductURL:      str(p["url"]),
		ProductImageURL: imageURL(p["image"]),
	}

	offers := p["offers"]
	if list, ok := offers.([]any); ok && len(list) > 0 {
		offers = list[0]
	}
	if o, ok := offers.(map[string]any); ok {
		price := firstNonEmpty(str(o["price"]), str(o["lowPrice"]))
		if d, err := money.ParsePrice(price); err == nil {
			raw.CurrentPrice = NewPrice(d)
		}
		if d, err := money.ParsePrice(str(o["highPrice"])); err == nil && raw.CurrentPrice.Valid && d.GreaterThan(raw.CurrentPrice.Amount) {
			raw.OriginalPrice = NewPrice(d)
		}
		raw.CurrencyCode = str(o["priceCurrency"])
		if seller, ok := o["seller"].(map[string]any); ok {
			raw.SellerName = str(seller["name"])
		}
		if raw.ProductURL == "" {
			raw.ProductURL = str(o["url"])
		}
	}

	if agg, ok := p["aggregateRating"].(map[string]any); ok {
		if f, err := strconv.ParseFloat(str(agg["ratingValue"]), 64); err == nil {
			best := 5.0
			if b, err := strconv.ParseFloat(str(agg["bestRating"]), 64); err == nil && b > 0 {
				best = b
			}
			r := Rating(f / best * 5)
			raw.Rating = &r
		}
		count := firstNonEmpty(str(agg["reviewCount"]), str(agg["ratingCount"]))
		if n, err := money.ParseCount(count); err == nil {
			raw.ReviewCount = Count(n)
		}
	}

	return raw
}

// fillFromMeta fills gaps from OpenGraph and microdata tags.
func fillFromMeta(doc *goquery.Selection, raw *Raw) {
	meta := func(selector string) string {
		v, _ := doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(v)
	}

	if raw.ProductName == "" {
		raw.ProductName = meta(`meta[property="og:title"]`)
	}
	if raw.ProductImageURL == "" {
		raw.ProductImageURL = meta(`meta[property="og:image"]`)
	}
	if raw.ProductURL == "" {
		raw.ProductURL = firstNonEmpty(meta(`meta[property="og:url"]`), attr(doc, `link[rel="canonical"]`, "href"))
	}
	if !raw.CurrentPrice.Valid {
		price := firstNonEmpty(
			meta(`meta[property="product:price:amount"]`),
			meta(`meta[property="og:price:amount"]`),
			meta(`[itemprop="price"]`),
			strings.TrimSpace(doc.Find(`[itemprop="price"]`).First().Text()),
		)
		if d, err := money.ParsePrice(price); err == nil {
			raw.CurrentPrice = NewPrice(d)
		}
	}
	if raw.CurrencyCode == "" {
		raw.CurrencyCode = firstNonEmpty(
			meta(`meta[property="product:price:currency"]`),
			meta(`meta[property="og:price:currency"]`),
			meta(`[itemprop="priceCurrency"]`),
		)
	}
}

func attr(doc *goquery.Selection, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

func imageURL(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			return imageURL(t[0])
		}
	case map[string]any:
		return str(t["url"])
	}
	return ""
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return decimal.NewFromFloat(t).String()
	case json.Number:
		return t.String()
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
