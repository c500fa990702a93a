package extract

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/shrutirout/foxdeal/pkg/platform"
)

// instructionTmpl is the natural-language extraction instruction.
const instructionTmpl = `Extract product information from this {{.Name}} page:
- Product name as 'productName'
- Direct URL to the product page as 'productUrl'. If this is a search results page, use the URL of the FIRST/TOP product listing. If this is a product page, use its canonical URL or the current page URL.
{{- if .Indian}}
- Current selling price as 'currentPrice' (look for: {{.Terms}}). Numeric value only, without ₹, Rs, commas or any symbols.
- Currency code as 'currencyCode' (use "INR" for Indian Rupees)
- Original MRP/list price as 'originalPrice' if available (without symbols)
{{- else}}
- Current price as 'currentPrice' (look for: {{.Terms}}). Numeric value only, no currency symbols.
- Currency code as 'currencyCode' (USD, EUR, GBP, etc.)
- Original/list price as 'originalPrice' if available
{{- end}}
- Main product image URL as 'productImageUrl'
- Seller name as 'sellerName' if available
- Seller rating as 'sellerRating' if available (0-5 scale, the seller's overall rating on the platform)
- Product rating as 'rating' if available (0-5 scale, this specific product's rating)
- Number of reviews as 'reviewCount' if available

Important: if multiple prices exist, extract the LOWEST/OFFER price as currentPrice and the HIGHEST as originalPrice.`

// pageTmpl wraps the instruction around fetched page content for LLM
// backends that cannot browse.
const pageTmpl = `{{.Instruction}}

Respond ONLY with a JSON object using exactly these keys. Use null for anything you cannot find.
{{.Schema}}

Page URL: {{.URL}}
Page title: {{.Title}}
{{- if .Structured}}
Structured data found on the page:
{{.Structured}}
{{- end}}

Page text:
{{.Text}}`

const systemPrompt = "You extract e-commerce product data from web pages and answer with strict JSON."

var (
	instructionTemplate = template.Must(template.New("instruction").Parse(instructionTmpl))
	pageTemplate        = template.Must(template.New("page").Parse(pageTmpl))
)

// ProductSchema is the JSON schema sent to extraction services.
// productName and currentPrice are required.
func ProductSchema() map[string]any {
	prop := func(t string) map[string]any { return map[string]any{"type": t} }
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"productName":     prop("string"),
			"productUrl":      prop("string"),
			"currentPrice":    prop("number"),
			"currencyCode":    prop("string"),
			"productImageUrl": prop("string"),
			"originalPrice":   prop("number"),
			"sellerName":      prop("string"),
			"sellerRating":    prop("number"),
			"rating":          prop("number"),
			"reviewCount":     prop("number"),
		},
		"required": []string{"productName", "currentPrice"},
	}
}

// RenderInstruction renders the extraction instruction for a platform.
func RenderInstruction(cfg platform.Config) (string, error) {
	data := struct {
		Name   string
		Indian bool
		Terms  string
	}{
		Name:   cfg.Name,
		Indian: cfg.Indian,
		Terms:  strings.Join(cfg.PriceTerms, ", "),
	}

	var buf bytes.Buffer
	if err := instructionTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering extraction instruction: %w", err)
	}
	return buf.String(), nil
}

// PageData is the input of the page prompt.
type PageData struct {
	Instruction string
	Schema      string
	URL         string
	Title       string
	Structured  string
	Text        string
}

// RenderPagePrompt renders the full prompt for an LLM reading a fetched page.
func RenderPagePrompt(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering page prompt: %w", err)
	}
	return buf.String(), nil
}
