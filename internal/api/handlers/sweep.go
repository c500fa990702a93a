package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shrutirout/foxdeal/internal/identity"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Sweeper runs one price sweep over every tracked product.
type Sweeper interface {
	RunSweep(ctx context.Context) (domain.SweepResult, error)
}

// SweepHandler triggers sweeps from an external scheduler.
type SweepHandler struct {
	sweeper Sweeper
	secret  string
}

// NewSweepHandler creates a new SweepHandler. With an empty secret every
// request is rejected.
func NewSweepHandler(s Sweeper, secret string) *SweepHandler {
	return &SweepHandler{sweeper: s, secret: secret}
}

// SweepInput carries the shared secret.
type SweepInput struct {
	Authorization string `header:"Authorization" doc:"Bearer <sweep secret>"`
}

// SweepOutput is the response body for the sweep endpoint.
type SweepOutput struct {
	Body struct {
		Total        int     `json:"total"`
		Updated      int     `json:"updated"`
		Failed       int     `json:"failed"`
		PriceChanges int     `json:"priceChanges"`
		AlertsSent   int     `json:"alertsSent"`
		Duration     float64 `json:"duration" doc:"Seconds"`
	}
}

// Sweep checks the current price of every tracked product.
func (h *SweepHandler) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	if !h.authorized(input.Authorization) {
		return nil, huma.Error401Unauthorized("invalid sweep secret")
	}

	res, err := h.sweeper.RunSweep(ctx)
	if err != nil && res.Total == 0 {
		return nil, statusError(err)
	}

	// A sweep interrupted midway still reports what it did.
	out := &SweepOutput{}
	out.Body.Total = res.Total
	out.Body.Updated = res.Updated
	out.Body.Failed = res.Failed
	out.Body.PriceChanges = res.PriceChanges
	out.Body.AlertsSent = res.AlertsSent
	out.Body.Duration = res.Duration.Seconds()
	return out, nil
}

func (h *SweepHandler) authorized(header string) bool {
	if h.secret == "" {
		return false
	}
	token, ok := identity.BearerToken(header)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

// RegisterSweepRoutes registers the sweep trigger for GET and POST.
func RegisterSweepRoutes(api huma.API, h *SweepHandler) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		id := "run-sweep"
		if method == http.MethodGet {
			id = "run-sweep-get"
		}
		huma.Register(api, huma.Operation{
			OperationID: id,
			Method:      method,
			Path:        "/api/v1/sweep",
			Summary:     "Run a price sweep",
			Description: "Checks the current price of every tracked product and sends drop alerts. " +
				"Authorized by the sweep secret. Overlapping runs are rejected.",
			Tags:   []string{"system"},
			Errors: []int{http.StatusUnauthorized, http.StatusConflict},
		}, h.Sweep)
	}
}
