package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Deals is the read-only deal evaluation surface of the engine.
type Deals interface {
	Preview(ctx context.Context, url string) (domain.ScoredFact, error)
	Compare(ctx context.Context, url string) (domain.Comparison, error)
	Search(ctx context.Context, query string) ([]domain.SearchCandidate, error)
}

// DealsHandler serves preview, comparison and search.
type DealsHandler struct {
	deals Deals
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(d Deals) *DealsHandler {
	return &DealsHandler{deals: d}
}

// URLInput is the request body of URL-keyed endpoints.
type URLInput struct {
	Body struct {
		URL string `json:"url" minLength:"1" doc:"Product page URL" example:"https://www.flipkart.com/apple-iphone-15/p/itm6ac6485515ae4"`
	}
}

// PreviewOutput is the response body for the preview endpoint.
type PreviewOutput struct {
	Body domain.ScoredFact
}

// Preview extracts and scores a product page without tracking it.
func (h *DealsHandler) Preview(ctx context.Context, input *URLInput) (*PreviewOutput, error) {
	sf, err := h.deals.Preview(ctx, input.Body.URL)
	if err != nil {
		return nil, statusError(err)
	}
	return &PreviewOutput{Body: sf}, nil
}

// CompareOutput is the response body for the compare endpoint.
type CompareOutput struct {
	Body domain.Comparison
}

// Compare finds the same product on other storefronts and ranks them.
func (h *DealsHandler) Compare(ctx context.Context, input *URLInput) (*CompareOutput, error) {
	cmp, err := h.deals.Compare(ctx, input.Body.URL)
	if err != nil {
		return nil, statusError(err)
	}
	if cmp.Alternatives == nil {
		cmp.Alternatives = []domain.ScoredFact{}
	}
	return &CompareOutput{Body: cmp}, nil
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" maxLength:"200" doc:"Product name" example:"iphone 15 128gb blue"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Candidates []domain.SearchCandidate `json:"candidates" doc:"Unverified listings"`
		Total      int                      `json:"total"`
	}
}

// Search looks a product up by name across storefronts.
func (h *DealsHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	candidates, err := h.deals.Search(ctx, input.Body.Query)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, statusError(err)
		}
		return nil, huma.Error502BadGateway("search failed: " + err.Error())
	}
	out := &SearchOutput{}
	out.Body.Candidates = candidates
	if out.Body.Candidates == nil {
		out.Body.Candidates = []domain.SearchCandidate{}
	}
	out.Body.Total = len(out.Body.Candidates)
	return out, nil
}

// RegisterDealRoutes registers preview, compare and search with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "preview-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/preview",
		Summary:     "Preview a product",
		Description: "Extracts and scores a product page without tracking it.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Preview)

	huma.Register(api, huma.Operation{
		OperationID: "compare-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/compare",
		Summary:     "Compare across platforms",
		Description: "Discovers the same product on other storefronts, verifies each candidate " +
			"and returns the original plus alternatives ranked by deal score.",
		Tags:   []string{"deals"},
		Errors: []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Compare)

	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search by product name",
		Description: "Proposes unverified listings for a product name across storefronts.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Search)
}
