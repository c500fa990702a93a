package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shrutirout/foxdeal/internal/quota"
)

// QuotaHandler reports usage of the metered upstreams (search, extraction).
type QuotaHandler struct {
	limiters []*quota.Limiter
}

// NewQuotaHandler creates a new QuotaHandler. Nil limiters are skipped.
func NewQuotaHandler(limiters ...*quota.Limiter) *QuotaHandler {
	h := &QuotaHandler{}
	for _, l := range limiters {
		if l != nil {
			h.limiters = append(h.limiters, l)
		}
	}
	return h
}

// UpstreamQuota is the usage of one upstream.
type UpstreamQuota struct {
	Upstream   string    `json:"upstream"    example:"serper"               doc:"Metered upstream"`
	DailyLimit int64     `json:"daily_limit" example:"2500"                 doc:"Configured daily call limit, 0 when uncapped"`
	DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"Calls used in the current 24-hour window"`
	Remaining  int64     `json:"remaining"   example:"2358"                 doc:"Calls remaining, -1 when uncapped"`
	ResetAt    time.Time `json:"reset_at"    example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		Upstreams []UpstreamQuota `json:"upstreams"`
	}
}

// GetQuota returns the current quota status of every upstream.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	resp.Body.Upstreams = make([]UpstreamQuota, 0, len(h.limiters))
	for _, l := range h.limiters {
		resp.Body.Upstreams = append(resp.Body.Upstreams, UpstreamQuota{
			Upstream:   l.Name(),
			DailyLimit: l.MaxDaily(),
			DailyUsed:  l.DailyCount(),
			Remaining:  l.Remaining(),
			ResetAt:    l.ResetAt(),
		})
	}
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get upstream quota status",
		Description: "Returns daily call usage, remaining quota and window reset time for each metered upstream.",
		Tags:        []string{"system"},
	}, h.GetQuota)
}
