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
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Guess is a proposed product page for a known product.
type Guess struct {
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Confidence string `json:"confidence"`
	Notes      string `json:"notes,omitempty"`
}

// Guesser proposes product page URLs for a product name.
type Guesser interface {
	Guess(ctx context.Context, name string) ([]Guess, error)
}

// DirectURL asks a Guesser for product pages of the anchor listing and
// keeps only well-formed product URLs.
type DirectURL struct {
	guesser Guesser
	log     *slog.Logger
}

// NewDirectURL creates the strategy.
func NewDirectURL(g Guesser, log *slog.Logger) *DirectURL {
	return &DirectURL{guesser: g, log: loggerOrDefault(log)}
}

// Name returns the strategy name.
func (*DirectURL) Name() string {
	return StrategyDirect
}

// Discover returns validated guesses. It yields nothing without an anchor.
func (s *DirectURL) Discover(ctx context.Context, q Query) ([]domain.SearchCandidate, error) {
	if q.Original == nil || q.Original.Name == "" {
		return nil, nil
	}

	guesses, err := s.guesser.Guess(ctx, q.Original.Name)
	if err != nil {
		return nil, fmt.Errorf("guessing product urls: %w", err)
	}

	seen := make(map[string]struct{})
	var out []domain.SearchCandidate
	for _, g := range guesses {
		d := platform.NormalizeDomain(g.Platform)
		if !ValidGuess(d, g.URL) || excluded(d, q.ExcludePlatform) {
			s.log.Debug("dropping guessed url", "platform", g.Platform, "url", g.URL)
			continue
		}
		if _, dup := seen[g.URL]; dup {
			continue
		}
		seen[g.URL] = struct{}{}
		out = append(out, domain.SearchCandidate{
			Platform:     d,
			PlatformName: platform.Name(d),
			URL:          g.URL,
			Title:        q.Original.Name,
			Confidence:   strings.ToLower(g.Confidence),
			Kind:         domain.CandidateProduct,
		})
	}

	s.log.Info("direct discovery", "product", q.Original.Name, "guesses", len(guesses), "candidates", len(out))
	return out, nil
}

// ValidGuess reports whether rawURL is an https product page hosted on
// domainName.
func ValidGuess(domainName, rawURL string) bool {
	if domainName == "" || !platform.SamePlatform(rawURL, domainName) {
		return false
	}
	return platform.IsProductURL(rawURL)
}

const guessTmpl = `You are a product search expert. Find where this exact product is sold in India.

PRODUCT: "{{.Name}}"

RULES:
- Return ONLY direct product page URLs, never search or category URLs
- Include ONLY platforms that sell this exact product
- Use the real URL patterns of each platform (amazon.in/.../dp/..., flipkart.com/.../p/...)
- Be conservative: if unsure, leave it out
- Allowed platforms: {{.Platforms}}

Return ONLY this JSON:
{
  "listings": [
    {"platform": "amazon.in", "url": "https://www.amazon.in/...", "confidence": "high/medium", "notes": "brief reason"}
  ]
}

If you are not confident about any listing, return {"listings": []}.`

var guessTemplate = template.Must(template.New("guess").Parse(guessTmpl))

// LLMGuesser asks a language model for product page URLs.
type LLMGuesser struct {
	backend llm.Backend
	log     *slog.Logger
}

// NewLLMGuesser creates a guesser backed by b.
func NewLLMGuesser(b llm.Backend, log *slog.Logger) *LLMGuesser {
	return &LLMGuesser{backend: b, log: loggerOrDefault(log)}
}

// Guess asks the model for listings of name.
func (g *LLMGuesser) Guess(ctx context.Context, name string) ([]Guess, error) {
	var buf bytes.Buffer
	if err := guessTemplate.Execute(&buf, map[string]string{
		"Name":      strings.TrimSpace(name),
		"Platforms": strings.Join(platform.AllowList(), ", "),
	}); err != nil {
		return nil, fmt.Errorf("rendering guess prompt: %w", err)
	}

	resp, err := g.backend.Generate(ctx, llm.Request{
		Prompt:      buf.String(),
		SystemMsg:   "You locate e-commerce product pages and answer with strict JSON.",
		Format:      llm.FormatJSON,
		Temperature: 0.2,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("generating guesses: %w", err)
	}

	var out struct {
		Listings []Guess `json:"listings"`
	}
	if err := llm.DecodeJSON(resp.Content, &out); err != nil {
		return nil, err
	}
	g.log.Debug("guessed listings", "product", name, "count", len(out.Listings))
	return out.Listings, nil
}
