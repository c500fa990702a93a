package client

import (
	"context"
	"net/http"
	"time"

	"github.com/shrutirout/foxdeal/internal/api/handlers"
)

// SweepSummary is the server's report of one sweep.
type SweepSummary struct {
	Total        int     `json:"total"`
	Updated      int     `json:"updated"`
	Failed       int     `json:"failed"`
	PriceChanges int     `json:"priceChanges"`
	AlertsSent   int     `json:"alertsSent"`
	Seconds      float64 `json:"duration"`
}

// Duration returns the sweep's wall time.
func (s SweepSummary) Duration() time.Duration {
	return time.Duration(s.Seconds * float64(time.Second))
}

// Sweep triggers a price sweep authorized by the sweep secret.
func (c *Client) Sweep(ctx context.Context, secret string) (SweepSummary, error) {
	var s SweepSummary
	h := http.Header{}
	h.Set("Authorization", "Bearer "+secret)
	if err := c.do(ctx, http.MethodPost, "/api/v1/sweep", h, nil, &s); err != nil {
		return SweepSummary{}, err
	}
	return s, nil
}

// Quota reports usage of the metered upstreams.
func (c *Client) Quota(ctx context.Context) ([]handlers.UpstreamQuota, error) {
	var resp struct {
		Upstreams []handlers.UpstreamQuota `json:"upstreams"`
	}
	if err := c.get(ctx, "/api/v1/quota", &resp); err != nil {
		return nil, err
	}
	return resp.Upstreams, nil
}
