package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/internal/notify"
	"github.com/shrutirout/foxdeal/pkg/llm"
	score "github.com/shrutirout/foxdeal/pkg/scorer"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// ErrVerdictUnavailable is returned when no verdict backend is configured.
var ErrVerdictUnavailable = errors.New("ai verdict is not configured")

const recentPoints = 5

// Trend directions.
const (
	TrendDropped   = "dropped"
	TrendIncreased = "increased"
	TrendStable    = "stable"
)

// PriceTrend summarizes a product's price history.
type PriceTrend struct {
	Min           decimal.Decimal            `json:"min"`
	Max           decimal.Decimal            `json:"max"`
	ChangePercent float64                    `json:"change_percent"`
	Direction     string                     `json:"direction"`
	Points        int                        `json:"points"`
	Recent        []domain.PriceHistoryPoint `json:"recent"`
}

// Verdict is a short buying recommendation for a tracked product.
type Verdict struct {
	ProductID string      `json:"product_id"`
	Text      string      `json:"text"`
	Model     string      `json:"model,omitempty"`
	Trend     *PriceTrend `json:"trend,omitempty"`
}

// SummarizeTrend computes the trend of history, oldest point first. It
// reports false when fewer than two points exist.
func SummarizeTrend(history []domain.PriceHistoryPoint) (PriceTrend, bool) {
	if len(history) < 2 {
		return PriceTrend{}, false
	}

	lo, hi := history[0].Price, history[0].Price
	for _, h := range history[1:] {
		lo = decimal.Min(lo, h.Price)
		hi = decimal.Max(hi, h.Price)
	}

	oldest, newest := history[0].Price, history[len(history)-1].Price
	var change float64
	if oldest.IsPositive() {
		change, _ = newest.Sub(oldest).Div(oldest).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	}

	direction := TrendStable
	switch {
	case newest.LessThan(oldest):
		direction = TrendDropped
	case newest.GreaterThan(oldest):
		direction = TrendIncreased
	}

	recent := history
	if len(recent) > recentPoints {
		recent = recent[len(recent)-recentPoints:]
	}

	return PriceTrend{
		Min:           lo,
		Max:           hi,
		ChangePercent: change,
		Direction:     direction,
		Points:        len(history),
		Recent:        append([]domain.PriceHistoryPoint(nil), recent...),
	}, true
}

// MRPDiscount returns the whole-percent discount of the current price from
// the original price, or false when there is none.
func MRPDiscount(p domain.TrackedProduct) (int64, bool) {
	if p.OriginalPrice == nil || !p.OriginalPrice.IsPositive() || !p.CurrentPrice.LessThan(*p.OriginalPrice) {
		return 0, false
	}
	pct := p.OriginalPrice.Sub(p.CurrentPrice).Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(0)
	return pct.IntPart(), true
}

const verdictTmpl = `You are a deal analyst for e-commerce. Give a SHORT, CRISP, HONEST verdict on this tracked product.

PRODUCT:
Name: {{.Product.Name}}
Platform: {{if .Product.PlatformDomain}}{{.Product.PlatformDomain}}{{else}}Unknown{{end}}
Current Price: {{.Price}}
{{- if .HasDiscount}}
Listed at {{.Discount}}% off MRP ({{.MRP}}).
{{- end}}
Deal Score: {{.Product.DealScore}}/100 ({{.Label}})
{{- if .Rating}}
Product Rating: {{.Rating}}/5
{{- end}}
{{- if .Product.ReviewCount}}
Number of Reviews: {{.Product.ReviewCount}}
{{- end}}
{{- if .Trend}}

PRICE HISTORY:
Recent prices: {{.Recent}}
Range tracked: {{.Min}} - {{.Max}}
Overall change: {{printf "%.1f" .Trend.ChangePercent}}% {{.Trend.Direction}} since first tracked
Total checkpoints: {{.Trend.Points}}
{{- end}}

RULES:
1. Write exactly 2-4 sentences. No bullet points, no headers.
{{- if .Trend}}
2. Analyze the price trend. Direction was "{{.Trend.Direction}}" ({{printf "%.1f" .Trend.ChangePercent}}%). Comment on whether now is a good time to buy.
{{- else}}
2. DO NOT mention price history or trends, there is no data yet. Only comment on the current deal quality based on score, rating and reviews.
{{- end}}
{{- if .HasDiscount}}
3. Mention the MRP discount as relevant context.
{{- end}}
4. End with a clear recommendation: buy now, wait, or already a solid deal.
5. Only use data provided above. Do not invent prices or ratings.
6. Keep it conversational, not technical.`

var verdictTemplate = template.Must(template.New("verdict").Parse(verdictTmpl))

// BuildVerdictPrompt renders the verdict prompt for p and its history.
func BuildVerdictPrompt(p domain.TrackedProduct, history []domain.PriceHistoryPoint) (string, error) {
	data := struct {
		Product     domain.TrackedProduct
		Price       string
		Label       string
		Rating      string
		HasDiscount bool
		Discount    int64
		MRP         string
		Trend       *PriceTrend
		Recent      string
		Min, Max    string
	}{
		Product: p,
		Price:   notify.FormatPrice(p.CurrentPrice, p.Currency),
	}

	lbl, _ := score.Label(p.DealScore)
	data.Label = string(lbl)
	if p.Rating != nil && *p.Rating > 0 {
		data.Rating = fmt.Sprintf("%.1f", *p.Rating)
	}
	if pct, ok := MRPDiscount(p); ok {
		data.HasDiscount = true
		data.Discount = pct
		data.MRP = notify.FormatPrice(*p.OriginalPrice, p.Currency)
	}
	if trend, ok := SummarizeTrend(history); ok {
		data.Trend = &trend
		data.Min = notify.FormatPrice(trend.Min, p.Currency)
		data.Max = notify.FormatPrice(trend.Max, p.Currency)
		parts := make([]string, 0, len(trend.Recent))
		for _, h := range trend.Recent {
			parts = append(parts, h.ObservedAt.Format("02 Jan 2006")+" "+notify.FormatPrice(h.Price, p.Currency))
		}
		data.Recent = strings.Join(parts, " -> ")
	}

	var buf bytes.Buffer
	if err := verdictTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering verdict prompt: %w", err)
	}
	return buf.String(), nil
}

// Verdict asks the configured model for a short recommendation on one of
// the owner's tracked products.
func (eng *Engine) Verdict(ctx context.Context, owner, id string) (Verdict, error) {
	if eng.verdict == nil {
		return Verdict{}, ErrVerdictUnavailable
	}

	p, err := eng.Product(ctx, owner, id)
	if err != nil {
		return Verdict{}, err
	}
	history, err := eng.store.ListPriceHistory(ctx, id)
	if err != nil {
		return Verdict{}, fmt.Errorf("listing price history: %w", err)
	}

	prompt, err := BuildVerdictPrompt(*p, history)
	if err != nil {
		return Verdict{}, err
	}

	eng.log.Info("generating ai verdict", "product_id", id, "backend", eng.verdict.Name())
	resp, err := eng.verdict.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: 0.4,
		MaxTokens:   400,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("generating verdict: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return Verdict{}, errors.New("generating verdict: empty model response")
	}

	v := Verdict{ProductID: id, Text: text, Model: resp.Model}
	if trend, ok := SummarizeTrend(history); ok {
		v.Trend = &trend
	}
	return v, nil
}
