package handlers

import (
	"context"
	"errors"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/identity"
	"github.com/shrutirout/foxdeal/internal/store"
	"github.com/shrutirout/foxdeal/pkg/extract"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// RegisterTypes teaches the schema registry about types with custom JSON
// encodings. Call it before registering routes.
func RegisterTypes(api huma.API) {
	api.OpenAPI().Components.Schemas.RegisterTypeAlias(
		reflect.TypeOf(decimal.Decimal{}), reflect.TypeOf(""),
	)
}

// owner resolves the caller or returns a 401.
func owner(ctx context.Context, ident identity.Identity) (string, error) {
	if ident == nil {
		return "", huma.Error401Unauthorized(domain.ErrNotAuthenticated.Error())
	}
	u, ok := ident.CurrentUser(ctx)
	if !ok {
		return "", huma.Error401Unauthorized(domain.ErrNotAuthenticated.Error())
	}
	return u.ID, nil
}

// statusError maps domain and engine errors onto HTTP problems.
func statusError(err error) error {
	var (
		verr *domain.ValidationError
		eerr *extract.ExtractionError
	)
	switch {
	case errors.As(err, &verr):
		return huma.Error400BadRequest(verr.Error())
	case errors.Is(err, domain.ErrNotAuthenticated):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("product not found")
	case errors.Is(err, engine.ErrSweepInProgress):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, engine.ErrInvalidFact):
		return huma.Error422UnprocessableEntity("page did not yield a product with a name and a positive price")
	case errors.As(err, &eerr):
		return huma.Error502BadGateway("extraction failed: " + string(eerr.Reason))
	case errors.Is(err, engine.ErrVerdictUnavailable):
		return huma.Error503ServiceUnavailable(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("upstream timed out")
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
