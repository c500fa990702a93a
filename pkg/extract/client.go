package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shrutirout/foxdeal/pkg/platform"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Defaults for the retry and timeout layers.
const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 2 * time.Second
	DefaultTimeout   = 30 * time.Second
	DefaultCacheTTL  = 6 * time.Hour
)

// Client extracts validated product facts through a Service.
type Client struct {
	svc       Service
	log       *slog.Logger
	attempts  int
	baseDelay time.Duration
	timeout   time.Duration
	cache     Cache
	cacheTTL  time.Duration
	limiter   Limiter
	observer  Observer
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// WithRetry sets the attempt count and the base backoff delay. The delay
// before attempt n+1 is base * 2^(n-1).
func WithRetry(attempts int, base time.Duration) ClientOption {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if base >= 0 {
			c.baseDelay = base
		}
	}
}

// WithTimeout sets the hard wall-clock limit of one attempt.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCache enables fact caching.
func WithCache(cache Cache, ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cache = cache
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithLimiter throttles attempts.
func WithLimiter(l Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithObserver reports every attempt.
func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// WithClock overrides time and sleeping for testing.
func WithClock(now func() time.Time, sleep func(context.Context, time.Duration) error) ClientOption {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// NewClient creates a Client for svc.
func NewClient(svc Service, opts ...ClientOption) *Client {
	c := &Client{
		svc:       svc,
		log:       slog.Default(),
		attempts:  DefaultAttempts,
		baseDelay: DefaultBaseDelay,
		timeout:   DefaultTimeout,
		cacheTTL:  DefaultCacheTTL,
		now:       time.Now,
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name of the underlying extraction service.
func (c *Client) Service() string {
	return c.svc.Name()
}

// Extract fetches rawURL and returns a fact with a name and a positive
// price. Failures are *ExtractionError; input validation failures are
// *domain.ValidationError.
func (c *Client) Extract(ctx context.Context, rawURL string) (domain.ProductFact, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := domain.Validate(domain.URLInput{URL: rawURL}); err != nil {
		return domain.ProductFact{}, err
	}

	if c.cache != nil {
		fact, ok, err := c.cache.GetFact(ctx, rawURL)
		switch {
		case err != nil:
			c.log.Warn("extraction cache read failed", "url", rawURL, "error", err)
		case ok && fact.Valid():
			c.log.Debug("extraction cache hit", "url", rawURL)
			return fact, nil
		}
	}

	cfg := platform.Detect(rawURL)
	prompt, err := RenderInstruction(cfg)
	if err != nil {
		return domain.ProductFact{}, err
	}
	req := Request{
		URL:      rawURL,
		Platform: cfg,
		Prompt:   prompt,
		Schema:   ProductSchema(),
		Timeout:  c.timeout,
	}

	c.log.Info("extracting product",
		"url", rawURL, "platform", cfg.Domain, "service", c.svc.Name())

	var lastErr error
	var lastReason Reason
	attempts := 0
	for attempt := 1; attempt <= c.attempts; attempt++ {
		attempts = attempt
		fact, err := c.attempt(ctx, req)
		if err == nil {
			if c.cache != nil {
				if err := c.cache.SetFact(ctx, rawURL, fact, c.cacheTTL); err != nil {
					c.log.Warn("extraction cache write failed", "url", rawURL, "error", err)
				}
			}
			return fact, nil
		}

		lastErr = err
		lastReason = classify(err)
		if ctx.Err() != nil || attempt == c.attempts {
			break
		}

		delay := c.baseDelay * time.Duration(1<<(attempt-1))
		c.log.Warn("extraction attempt failed, retrying",
			"url", rawURL,
			"attempt", attempt,
			"max_attempts", c.attempts,
			"reason", lastReason,
			"delay", delay,
			"error", err,
		)
		if err := c.sleep(ctx, delay); err != nil {
			break
		}
	}

	c.log.Error("extraction failed",
		"url", rawURL, "platform", cfg.Domain, "reason", lastReason, "error", lastErr)

	return domain.ProductFact{}, &ExtractionError{
		Reason:   lastReason,
		URL:      rawURL,
		Platform: cfg.Name,
		Attempts: attempts,
		Err:      lastErr,
	}
}

type attemptResult struct {
	raw Raw
	err error
}

// attempt runs one service call under a wall-clock deadline that holds
// even when the service ignores its context.
func (c *Client) attempt(ctx context.Context, req Request) (fact domain.ProductFact, err error) {
	start := c.now()
	defer func() {
		if c.observer != nil {
			var reason Reason
			if err != nil {
				reason = classify(err)
			}
			c.observer.ObserveAttempt(c.svc.Name(), reason, c.now().Sub(start))
		}
	}()

	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(actx); err != nil {
			if actx.Err() != nil {
				return domain.ProductFact{}, fmt.Errorf("waiting for rate limiter: %w", errAttemptTimeout)
			}
			return domain.ProductFact{}, &HTTPError{
				Service:    c.svc.Name(),
				StatusCode: http.StatusTooManyRequests,
				Message:    err.Error(),
			}
		}
	}

	done := make(chan attemptResult, 1)
	go func() {
		raw, err := c.svc.Extract(actx, req)
		done <- attemptResult{raw: raw, err: err}
	}()

	select {
	case <-actx.Done():
		if errors.Is(actx.Err(), context.DeadlineExceeded) {
			return domain.ProductFact{}, fmt.Errorf("after %s: %w", c.timeout, errAttemptTimeout)
		}
		return domain.ProductFact{}, actx.Err()
	case res := <-done:
		if res.err != nil {
			return domain.ProductFact{}, res.err
		}
		return c.toFact(req, res.raw)
	}
}

// toFact validates a raw answer and normalizes it into a ProductFact.
func (c *Client) toFact(req Request, raw Raw) (domain.ProductFact, error) {
	name := strings.Join(strings.Fields(raw.ProductName), " ")
	if name == "" {
		return domain.ProductFact{}, fmt.Errorf("%w: missing product name", ErrInvalidResponse)
	}
	if !raw.CurrentPrice.Valid || !raw.CurrentPrice.Amount.IsPositive() {
		return domain.ProductFact{}, fmt.Errorf("%w: missing or non-positive price", ErrInvalidResponse)
	}

	currency := strings.ToUpper(strings.TrimSpace(raw.CurrencyCode))
	if currency == "" {
		currency = req.Platform.DefaultCurrency()
	}

	original := raw.OriginalPrice.Ptr()
	if original != nil && !original.IsPositive() {
		original = nil
	}

	fact := domain.ProductFact{
		Name:           name,
		CurrentPrice:   raw.CurrentPrice.Amount,
		OriginalPrice:  original,
		CurrencyCode:   currency,
		ImageURL:       resolveURL(req.URL, raw.ProductImageURL),
		SellerName:     strings.TrimSpace(raw.SellerName),
		SellerRating:   ratingPtr(raw.SellerRating),
		Rating:         ratingPtr(raw.Rating),
		ReviewCount:    max(int(raw.ReviewCount), 0),
		PlatformDomain: req.Platform.Domain,
		PlatformName:   req.Platform.Name,
		SourceURL:      req.URL,
		ExtractedAt:    c.now().UTC(),
	}
	if u := resolveURL(req.URL, raw.ProductURL); u != "" {
		fact.SourceURL = u
	}
	return fact, nil
}

func ratingPtr(r *Rating) *float64 {
	if r == nil {
		return nil
	}
	v := float64(*r)
	if v < 0 || v > 5 {
		return nil
	}
	return &v
}

// resolveURL makes ref absolute against base and keeps only http(s) URLs.
func resolveURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	u := b.ResolveReference(r)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
