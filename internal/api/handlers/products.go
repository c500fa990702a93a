package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/identity"
	"github.com/shrutirout/foxdeal/internal/store"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Tracker is the per-owner product tracking surface of the engine.
type Tracker interface {
	Track(ctx context.Context, owner, url string) (domain.Observation, error)
	Products(ctx context.Context, owner string, q store.ProductQuery) ([]domain.TrackedProduct, int, error)
	Product(ctx context.Context, owner, id string) (*domain.TrackedProduct, error)
	History(ctx context.Context, owner, id string) ([]domain.PriceHistoryPoint, error)
	Delete(ctx context.Context, owner, id string) error
	Verdict(ctx context.Context, owner, id string) (engine.Verdict, error)
}

// ProductsHandler serves the caller's tracked products.
type ProductsHandler struct {
	tracker Tracker
	ident   identity.Identity
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(t Tracker, ident identity.Identity) *ProductsHandler {
	return &ProductsHandler{tracker: t, ident: ident}
}

// ProductIDInput addresses one tracked product.
type ProductIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Tracked product UUID"`
}

// TrackOutput is the response body for the track endpoint.
type TrackOutput struct {
	Body domain.Observation
}

// Track starts tracking a product page for the caller.
func (h *ProductsHandler) Track(ctx context.Context, input *URLInput) (*TrackOutput, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}
	obs, err := h.tracker.Track(ctx, who, input.Body.URL)
	if err != nil {
		return nil, statusError(err)
	}
	return &TrackOutput{Body: obs}, nil
}

// ListProductsInput filters and pages the caller's tracked products.
type ListProductsInput struct {
	Platform string  `query:"platform"  doc:"Filter by platform domain, e.g. amazon.in"`
	Search   string  `query:"search"    doc:"Case-insensitive name substring"            maxLength:"200"`
	MinScore float64 `query:"min_score" doc:"Minimum deal score"                         minimum:"0" maximum:"100"`
	Limit    int     `query:"limit"     doc:"Number of results (default 50)"             minimum:"1" maximum:"500"`
	Offset   int     `query:"offset"    doc:"Pagination offset"                          minimum:"0"`
	OrderBy  string  `query:"order_by"  doc:"Sort field (default created_at)"            enum:"created_at,updated_at,score,price,"`
}

// ListProductsOutput is the response body for the list endpoint.
type ListProductsOutput struct {
	Body struct {
		Products []domain.TrackedProduct `json:"products"`
		Total    int                     `json:"total" doc:"Matches across all pages"`
		Limit    int                     `json:"limit"`
		Offset   int                     `json:"offset"`
	}
}

// List returns one page of the caller's tracked products, newest first
// unless order_by says otherwise.
func (h *ProductsHandler) List(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}

	q := store.ProductQuery{
		Platform: input.Platform,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
		OrderBy:  input.OrderBy,
	}
	if input.MinScore != 0 {
		q.MinScore = &input.MinScore
	}

	products, total, err := h.tracker.Products(ctx, who, q)
	if err != nil {
		return nil, statusError(err)
	}
	out := &ListProductsOutput{}
	out.Body.Products = products
	if out.Body.Products == nil {
		out.Body.Products = []domain.TrackedProduct{}
	}
	out.Body.Total = total
	out.Body.Limit = q.PageSize()
	out.Body.Offset = q.Offset
	return out, nil
}

// ProductOutput is the response body for the get endpoint.
type ProductOutput struct {
	Body *domain.TrackedProduct
}

// Get returns one of the caller's tracked products.
func (h *ProductsHandler) Get(ctx context.Context, input *ProductIDInput) (*ProductOutput, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}
	p, err := h.tracker.Product(ctx, who, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &ProductOutput{Body: p}, nil
}

// HistoryOutput is the response body for the history endpoint.
type HistoryOutput struct {
	Body struct {
		Points []domain.PriceHistoryPoint `json:"points" doc:"Observations, oldest first"`
	}
}

// History returns the price history of one of the caller's products.
func (h *ProductsHandler) History(ctx context.Context, input *ProductIDInput) (*HistoryOutput, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}
	points, err := h.tracker.History(ctx, who, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	out := &HistoryOutput{}
	out.Body.Points = points
	if out.Body.Points == nil {
		out.Body.Points = []domain.PriceHistoryPoint{}
	}
	return out, nil
}

// Delete stops tracking one of the caller's products.
func (h *ProductsHandler) Delete(ctx context.Context, input *ProductIDInput) (*struct{}, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}
	if err := h.tracker.Delete(ctx, who, input.ID); err != nil {
		return nil, statusError(err)
	}
	return nil, nil
}

// VerdictOutput is the response body for the verdict endpoint.
type VerdictOutput struct {
	Body engine.Verdict
}

// Verdict asks the model for a buying recommendation.
func (h *ProductsHandler) Verdict(ctx context.Context, input *ProductIDInput) (*VerdictOutput, error) {
	who, err := owner(ctx, h.ident)
	if err != nil {
		return nil, err
	}
	v, err := h.tracker.Verdict(ctx, who, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &VerdictOutput{Body: v}, nil
}

// RegisterProductRoutes registers tracked product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	security := []map[string][]string{{"bearer": {}}}

	huma.Register(api, huma.Operation{
		OperationID: "track-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/products",
		Summary:     "Track a product",
		Description: "Extracts a product page and tracks its price for the caller. " +
			"Tracking an already tracked URL refreshes it.",
		Tags:     []string{"products"},
		Security: security,
		Errors: []int{
			http.StatusBadRequest, http.StatusUnauthorized,
			http.StatusUnprocessableEntity, http.StatusBadGateway,
		},
	}, h.Track)

	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List tracked products",
		Description: "Filters by platform, name and minimum deal score, with pagination.",
		Tags:        []string{"products"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a tracked product",
		Tags:        []string{"products"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/history",
		Summary:     "Get price history",
		Tags:        []string{"products"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.History)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Method:        http.MethodDelete,
		Path:          "/api/v1/products/{id}",
		Summary:       "Stop tracking a product",
		Tags:          []string{"products"},
		Security:      security,
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "product-verdict",
		Method:      http.MethodPost,
		Path:        "/api/v1/products/{id}/verdict",
		Summary:     "Get an AI buying verdict",
		Description: "Summarizes the price trend and asks the configured model for a short recommendation.",
		Tags:        []string{"products"},
		Security:    security,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound, http.StatusServiceUnavailable},
	}, h.Verdict)
}
