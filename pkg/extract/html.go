package extract

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// HTMLService implements Service by scraping schema.org JSON-LD,
// OpenGraph and microdata from the server-rendered page. It needs no API
// key or model and is used as the offline fallback.
type HTMLService struct {
	userAgent string
	timeout   time.Duration
	transport http.RoundTripper
}

// HTMLOption configures the HTMLService.
type HTMLOption func(*HTMLService)

// WithHTMLUserAgent overrides the User-Agent header.
func WithHTMLUserAgent(ua string) HTMLOption {
	return func(s *HTMLService) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithHTMLTransport overrides the HTTP transport.
func WithHTMLTransport(rt http.RoundTripper) HTMLOption {
	return func(s *HTMLService) {
		s.transport = rt
	}
}

// NewHTMLService creates a structured-data scraping service.
func NewHTMLService(opts ...HTMLOption) *HTMLService {
	s := &HTMLService{
		userAgent: defaultUserAgent,
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the service name.
func (*HTMLService) Name() string {
	return "html"
}

// Extract visits req.URL and reads the product data embedded in it.
func (s *HTMLService) Extract(ctx context.Context, req Request) (Raw, error) {
	c := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(s.userAgent),
		colly.AllowURLRevisit(),
	)
	timeout := s.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	c.SetRequestTimeout(timeout)
	if s.transport != nil {
		c.WithTransport(s.transport)
	}

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", req.Platform.AcceptLanguage())
		r.Headers.Set("Accept", "text/html,application/xhtml+xml")
	})

	var (
		page      Page
		found     bool
		scrapeErr error
	)
	c.OnHTML("html", func(e *colly.HTMLElement) {
		page = ReadPage(e.DOM, e.Request.URL.String(), 0)
		found = true
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode >= http.StatusBadRequest {
			scrapeErr = &HTTPError{
				Service:    req.Platform.Domain,
				StatusCode: r.StatusCode,
				Message:    http.StatusText(r.StatusCode),
			}
			return
		}
		scrapeErr = fmt.Errorf("fetching page: %w", err)
	})

	if err := c.Visit(req.URL); err != nil && scrapeErr == nil {
		scrapeErr = fmt.Errorf("visiting %s: %w", req.URL, err)
	}
	if scrapeErr != nil {
		return Raw{}, scrapeErr
	}
	if !found {
		return Raw{}, fmt.Errorf("%w: response was not an HTML document", ErrInvalidResponse)
	}

	raw := page.Structured
	if raw.ProductName == "" || !raw.CurrentPrice.Valid {
		return Raw{}, fmt.Errorf("%w: no structured product data on page", ErrInvalidResponse)
	}
	return raw, nil
}
