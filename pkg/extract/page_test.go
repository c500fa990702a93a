package extract_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/pkg/extract"
)

const jsonLDPage = `<!DOCTYPE html>
<html>
<head>
  <title>Philips HD9252/90 Air Fryer | Croma</title>
  <script type="application/ld+json">{"@context":"https://schema.org","@type":"BreadcrumbList","itemListElement":[]}</script>
  <script type="application/ld+json">
  {"@context":"https://schema.org","@graph":[
    {"@type":"WebPage","name":"ignored"},
    {"@type":["Product","Thing"],
     "name":"Philips HD9252/90 Air Fryer",
     "image":["https://media.croma.com/hd9252.png"],
     "offers":[{"@type":"AggregateOffer","lowPrice":"7,999","highPrice":"9995","priceCurrency":"INR","seller":{"name":"Croma"}}],
     "aggregateRating":{"ratingValue":"8.6","bestRating":"10","reviewCount":"1,204"}}
  ]}
  </script>
</head>
<body>
  <nav>Menu</nav>
  <h1>Philips Air Fryer</h1>
  <p>Rapid   air technology.</p>
  <script>var x = 1;</script>
</body>
</html>`

const openGraphPage = `<html><head>
<meta property="og:title" content="Boat Airdopes 141">
<meta property="og:image" content="/img/airdopes.jpg">
<meta property="product:price:amount" content="1,299.00">
<meta property="product:price:currency" content="INR">
<link rel="canonical" href="https://www.boat-lifestyle.com/products/airdopes-141">
</head><body><h1>ignored heading</h1><span itemprop="price">₹999</span></body></html>`

func parse(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestReadPage_JSONLD(t *testing.T) {
	t.Parallel()

	page := extract.ReadPage(parse(t, jsonLDPage), "https://www.croma.com/p/243517", 0)

	assert.Equal(t, "Philips HD9252/90 Air Fryer | Croma", page.Title)
	assert.Equal(t, "Philips Air Fryer Rapid air technology.", page.Text)

	raw := page.Structured
	assert.Equal(t, "Philips HD9252/90 Air Fryer", raw.ProductName)
	assert.Equal(t, "https://media.croma.com/hd9252.png", raw.ProductImageURL)
	require.True(t, raw.CurrentPrice.Valid)
	assert.True(t, raw.CurrentPrice.Amount.Equal(decimal.NewFromInt(7999)))
	require.True(t, raw.OriginalPrice.Valid)
	assert.True(t, raw.OriginalPrice.Amount.Equal(decimal.NewFromInt(9995)))
	assert.Equal(t, "INR", raw.CurrencyCode)
	assert.Equal(t, "Croma", raw.SellerName)
	require.NotNil(t, raw.Rating)
	assert.InDelta(t, 4.3, float64(*raw.Rating), 0.001)
	assert.Equal(t, extract.Count(1204), raw.ReviewCount)
}

func TestReadPage_OpenGraph(t *testing.T) {
	t.Parallel()

	page := extract.ReadPage(parse(t, openGraphPage), "https://www.boat-lifestyle.com/products/airdopes-141", 0)

	raw := page.Structured
	assert.Equal(t, "Boat Airdopes 141", raw.ProductName)
	assert.Equal(t, "/img/airdopes.jpg", raw.ProductImageURL)
	assert.Equal(t, "https://www.boat-lifestyle.com/products/airdopes-141", raw.ProductURL)
	require.True(t, raw.CurrentPrice.Valid)
	assert.True(t, raw.CurrentPrice.Amount.Equal(decimal.NewFromInt(1299)))
	assert.Equal(t, "INR", raw.CurrencyCode)
}

func TestReadPage_TruncatesText(t *testing.T) {
	t.Parallel()

	page := extract.ReadPage(parse(t, "<html><body><p>₹₹₹₹</p></body></html>"), "https://x.test/", 4)
	assert.Equal(t, "₹", page.Text, "cut lands on a rune boundary")
}
