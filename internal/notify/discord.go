package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Embed colors by size of drop.
const (
	colorGreen  = 0x2ECC71 // 20% or more
	colorYellow = 0xF1C40F // 10% to 20%
	colorOrange = 0xE67E22
)

// discordTitleLimit is Discord's cap on embed titles, in characters.
const discordTitleLimit = 256

// DiscordNotifier posts price drops to a Discord channel webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient replaces the default client, which times out after 10s.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) { d.client = c }
}

// NewDiscordNotifier creates a notifier for webhookURL.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RateLimitError is returned when Discord answers 429.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("discord rate limited, retry after %s", e.RetryAfter)
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// NotifyPriceDrop posts the drop as a Discord embed.
func (d *DiscordNotifier) NotifyPriceDrop(
	ctx context.Context,
	recipient string,
	product domain.TrackedProduct,
	oldPrice, newPrice decimal.Decimal,
) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(recipient, product, oldPrice, newPrice)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(recipient string, p domain.TrackedProduct, oldPrice, newPrice decimal.Decimal) discordEmbed {
	pct := DropPercent(oldPrice, newPrice)
	saved := oldPrice.Sub(newPrice)

	embed := discordEmbed{
		Title: truncate("Price Drop: "+p.Name, discordTitleLimit),
		URL:   p.URL,
		Color: dropColor(pct),
		Fields: []discordEmbedField{
			{Name: "Was", Value: FormatPrice(oldPrice, p.Currency), Inline: true},
			{Name: "Now", Value: FormatPrice(newPrice, p.Currency), Inline: true},
			{Name: "You Save", Value: fmt.Sprintf("%s (%.1f%%)", FormatPrice(saved, p.Currency), pct), Inline: true},
			{Name: "Deal Score", Value: fmt.Sprintf("%.1f/100", p.DealScore), Inline: true},
			{Name: "Platform", Value: platform.Name(p.PlatformDomain), Inline: true},
		},
	}
	if recipient != "" {
		embed.Description = "Tracked by " + recipient
	}
	if p.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: p.ImageURL}
	}

	return embed
}

func dropColor(pct float64) int {
	switch {
	case pct >= 20:
		return colorGreen
	case pct >= 10:
		return colorYellow
	default:
		return colorOrange
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		var limited struct {
			RetryAfter float64 `json:"retry_after"`
		}
		_ = json.Unmarshal(respBody, &limited)
		return &RateLimitError{RetryAfter: time.Duration(limited.RetryAfter * float64(time.Second))}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	return nil
}
