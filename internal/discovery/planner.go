package discovery

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/shrutirout/foxdeal/pkg/llm"
	"github.com/shrutirout/foxdeal/pkg/platform"
)

// Plan is a search plan for a free-text product query.
type Plan struct {
	RefinedQuery   string   `json:"refined_query"`
	Platforms      []string `json:"platforms"`
	Brand          string   `json:"brand,omitempty"`
	Category       string   `json:"category,omitempty"`
	Specifications string   `json:"specifications,omitempty"`
	Confidence     string   `json:"confidence"`
	// Fallback is set when the plan was not produced by the planner.
	Fallback bool `json:"fallback"`
}

// Planner turns a raw query into a search plan.
type Planner interface {
	Plan(ctx context.Context, query string) (Plan, error)
}

// PlanningError wraps any failure to obtain a usable plan. It never leaves
// this package: PlannedSearch resolves it with FallbackPlan.
type PlanningError struct {
	Query string
	Err   error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("planning %q: %v", e.Query, e.Err)
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}

// FallbackPlan searches the raw query on the fallback storefronts.
func FallbackPlan(query string) Plan {
	return Plan{
		RefinedQuery: strings.TrimSpace(query),
		Platforms:    append([]string(nil), platform.FallbackPlatforms...),
		Category:     "Unknown",
		Confidence:   "low",
		Fallback:     true,
	}
}

const planTmpl = `You are a product search expert. Analyze this product query and help create the best search terms.

USER QUERY: "{{.Query}}"

YOUR TASK:
1. Extract the brand (if mentioned)
2. Identify the product category
3. Extract key specifications (color, size, model, storage, etc.)
4. Choose the Indian e-commerce platforms that sell this category
5. Write an optimized search query

Return ONLY this JSON:
{
  "brand": "brand name or null",
  "category": "Electronics, Fashion, Beauty, Home, etc.",
  "specifications": "key specs or null",
  "refinedQuery": "optimized search string",
  "platforms": ["platform1.com", "platform2.com"],
  "confidence": "high/medium/low"
}

PLATFORM SELECTION RULES:
- Electronics (phones, laptops, TVs, headphones, cameras, appliances): amazon.in, flipkart.com, tatacliq.com, croma.com, reliancedigital.in, vijaysales.com
- Fashion/Footwear (clothing, shoes, bags, watches): amazon.in, flipkart.com, myntra.com, tatacliq.com, ajio.com
- Beauty/Cosmetics: amazon.in, flipkart.com, myntra.com
- Home/Furniture/Kitchen, Sports/Fitness: amazon.in, flipkart.com, tatacliq.com
- Generic/Unknown: amazon.in, flipkart.com
Only use these domains: {{.Platforms}}

SEARCH QUERY RULES:
- Brand + product type + key specs, 4-8 words
- Use terms that appear in product titles
- Example: "iphone 15 black 128gb" -> "Apple iPhone 15 Black 128GB"`

var planTemplate = template.Must(template.New("plan").Parse(planTmpl))

// LLMPlanner asks a language model for a search plan.
type LLMPlanner struct {
	backend llm.Backend
	log     *slog.Logger
}

// NewLLMPlanner creates a planner backed by b.
func NewLLMPlanner(b llm.Backend, log *slog.Logger) *LLMPlanner {
	return &LLMPlanner{backend: b, log: loggerOrDefault(log)}
}

type planResponse struct {
	RefinedQuery   string   `json:"refinedQuery"`
	OptimizedQuery string   `json:"optimizedQuery"`
	SearchQuery    string   `json:"searchQuery"`
	Platforms      []string `json:"platforms"`
	Brand          *string  `json:"brand"`
	Category       *string  `json:"category"`
	Specifications *string  `json:"specifications"`
	Confidence     string   `json:"confidence"`
}

// Plan asks the model for a plan. Every failure is a *PlanningError.
func (p *LLMPlanner) Plan(ctx context.Context, query string) (Plan, error) {
	query = strings.TrimSpace(query)

	var buf bytes.Buffer
	if err := planTemplate.Execute(&buf, map[string]string{
		"Query":     query,
		"Platforms": strings.Join(platform.AllowList(), ", "),
	}); err != nil {
		return Plan{}, &PlanningError{Query: query, Err: fmt.Errorf("rendering plan prompt: %w", err)}
	}

	resp, err := p.backend.Generate(ctx, llm.Request{
		Prompt:      buf.String(),
		SystemMsg:   "You plan e-commerce product searches and answer with strict JSON.",
		Format:      llm.FormatJSON,
		Temperature: 0.3,
		MaxTokens:   512,
	})
	if err != nil {
		return Plan{}, &PlanningError{Query: query, Err: err}
	}

	var raw planResponse
	if err := llm.DecodeJSON(resp.Content, &raw); err != nil {
		return Plan{}, &PlanningError{Query: query, Err: err}
	}

	plan := Plan{
		RefinedQuery:   firstNonEmpty(raw.RefinedQuery, raw.OptimizedQuery, raw.SearchQuery, query),
		Brand:          deref(raw.Brand),
		Category:       deref(raw.Category),
		Specifications: deref(raw.Specifications),
		Confidence:     strings.ToLower(strings.TrimSpace(raw.Confidence)),
	}
	for _, d := range raw.Platforms {
		if d = platform.NormalizeDomain(d); d != "" {
			plan.Platforms = append(plan.Platforms, d)
		}
	}
	if len(plan.Platforms) == 0 {
		plan.Platforms = platform.ForCategory(plan.Category)
	}
	if plan.Confidence == "" {
		plan.Confidence = "medium"
	}

	p.log.Debug("search plan",
		"query", query,
		"refined", plan.RefinedQuery,
		"platforms", plan.Platforms,
		"model", resp.Model,
	)
	return plan, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
