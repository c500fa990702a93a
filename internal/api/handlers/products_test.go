package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/api/handlers"
	"github.com/shrutirout/foxdeal/internal/api/handlers/mocks"
	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/identity"
	"github.com/shrutirout/foxdeal/internal/store"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const productID = "6f1c2a9e-3c7b-4d52-9d2e-0b8a2f4c9e11"

var (
	alice     = identity.Static{User: domain.User{ID: "alice"}}
	anonymous = identity.Static{}
)

func newProductsAPI(t *testing.T, m *mocks.MockTracker, ident identity.Identity) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterTypes(api)
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(m, ident))
	return api
}

func trackedProduct() domain.TrackedProduct {
	return domain.TrackedProduct{
		ID:             productID,
		OwnerID:        "alice",
		URL:            productURL,
		Name:           "Apple iPhone 15 (Blue, 128 GB)",
		CurrentPrice:   decimal.RequireFromString("65999"),
		Currency:       "INR",
		PlatformDomain: "flipkart.com",
		DealScore:      72.5,
		CreatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestProductsHandler_Unauthenticated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "track", method: http.MethodPost, path: "/api/v1/products", body: map[string]any{"url": productURL}},
		{name: "list", method: http.MethodGet, path: "/api/v1/products"},
		{name: "get", method: http.MethodGet, path: "/api/v1/products/" + productID},
		{name: "history", method: http.MethodGet, path: "/api/v1/products/" + productID + "/history"},
		{name: "delete", method: http.MethodDelete, path: "/api/v1/products/" + productID},
		{name: "verdict", method: http.MethodPost, path: "/api/v1/products/" + productID + "/verdict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockTracker(t)
			api := newProductsAPI(t, m, anonymous)

			var args []any
			if tt.body != nil {
				args = append(args, tt.body)
			}
			resp := api.Do(tt.method, tt.path, args...)
			require.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Contains(t, resp.Body.String(), "not authenticated")
		})
	}
}

func TestProductsHandler_Track(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockTracker)
		wantStatus int
		wantBody   string
	}{
		{
			name: "tracks for the caller",
			setupMock: func(m *mocks.MockTracker) {
				m.EXPECT().Track(mock.Anything, "alice", productURL).Return(domain.Observation{
					Updated:         trackedProduct(),
					HistoryAppended: true,
					NewPrice:        decimal.RequireFromString("65999"),
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"history_appended":true`,
		},
		{
			name: "store failure returns 500",
			setupMock: func(m *mocks.MockTracker) {
				m.EXPECT().Track(mock.Anything, "alice", productURL).
					Return(domain.Observation{}, errors.New("upserting tracked product: conn reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockTracker(t)
			tt.setupMock(m)
			api := newProductsAPI(t, m, alice)

			resp := api.Post("/api/v1/products", map[string]any{"url": productURL})
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProductsHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("returns products", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Products(mock.Anything, "alice", store.ProductQuery{}).
			Return([]domain.TrackedProduct{trackedProduct()}, 12, nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products")
		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Products []domain.TrackedProduct `json:"products"`
			Total    int                     `json:"total"`
			Limit    int                     `json:"limit"`
			Offset   int                     `json:"offset"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, 12, body.Total)
		assert.Equal(t, 50, body.Limit)
		assert.Zero(t, body.Offset)
		assert.Equal(t, productID, body.Products[0].ID)
	})

	t.Run("query parameters become filters", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Products(mock.Anything, "alice", mock.MatchedBy(func(q store.ProductQuery) bool {
			return q.Platform == "flipkart.com" &&
				q.Search == "iphone 15" &&
				q.MinScore != nil && *q.MinScore == 60 &&
				q.Limit == 10 && q.Offset == 20 &&
				q.OrderBy == "score" &&
				q.OwnerID == ""
		})).Return(nil, 0, nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products?platform=flipkart.com&search=iphone%2015&min_score=60&limit=10&offset=20&order_by=score")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"limit":10`)
		assert.Contains(t, resp.Body.String(), `"offset":20`)
	})

	t.Run("invalid parameters are rejected", func(t *testing.T) {
		t.Parallel()

		for _, query := range []string{"order_by=rating", "limit=0", "limit=501", "min_score=101", "offset=-1"} {
			api := newProductsAPI(t, mocks.NewMockTracker(t), alice)
			resp := api.Get("/api/v1/products?" + query)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, query)
		}
	})

	t.Run("empty is a list", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Products(mock.Anything, "alice", store.ProductQuery{}).Return(nil, 0, nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"products":[]`)
	})

	t.Run("token user wins over the default user", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Products(mock.Anything, "bob", mock.Anything).Return(nil, 0, nil).Once()

		ctxIdent := contextIdentity{user: domain.User{ID: "bob"}}
		api := newProductsAPI(t, m, ctxIdent)

		resp := api.Get("/api/v1/products")
		require.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestProductsHandler_MalformedID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "get", method: http.MethodGet, path: "/api/v1/products/not-a-uuid"},
		{name: "history", method: http.MethodGet, path: "/api/v1/products/123/history"},
		{name: "delete", method: http.MethodDelete, path: "/api/v1/products/not-a-uuid"},
		{name: "verdict", method: http.MethodPost, path: "/api/v1/products/6f1c2a9e/verdict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: the tracker must not be reached.
			api := newProductsAPI(t, mocks.NewMockTracker(t), alice)
			resp := api.Do(tt.method, tt.path)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		})
	}
}

// contextIdentity behaves like the auth middleware already ran.
type contextIdentity struct {
	user domain.User
}

func (c contextIdentity) CurrentUser(ctx context.Context) (domain.User, bool) {
	return identity.Static{User: domain.User{ID: "local"}}.CurrentUser(identity.WithUser(ctx, c.user))
}

func TestProductsHandler_GetHistoryDelete(t *testing.T) {
	t.Parallel()

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		p := trackedProduct()
		m := mocks.NewMockTracker(t)
		m.EXPECT().Product(mock.Anything, "alice", productID).Return(&p, nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products/" + productID)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"platform_domain":"flipkart.com"`)
	})

	t.Run("get missing returns 404", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Product(mock.Anything, "alice", productID).Return(nil, store.ErrNotFound).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products/" + productID)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("history oldest first", func(t *testing.T) {
		t.Parallel()

		points := []domain.PriceHistoryPoint{
			{ID: 1, TrackedProductID: productID, Price: decimal.RequireFromString("69999"), Currency: "INR",
				ObservedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
			{ID: 2, TrackedProductID: productID, Price: decimal.RequireFromString("65999"), Currency: "INR",
				ObservedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
		}
		m := mocks.NewMockTracker(t)
		m.EXPECT().History(mock.Anything, "alice", productID).Return(points, nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products/" + productID + "/history")
		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Points []domain.PriceHistoryPoint `json:"points"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Len(t, body.Points, 2)
		assert.True(t, body.Points[0].ObservedAt.Before(body.Points[1].ObservedAt))
	})

	t.Run("history of another owner's product returns 404", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().History(mock.Anything, "alice", productID).Return(nil, store.ErrNotFound).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Get("/api/v1/products/" + productID + "/history")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Delete(mock.Anything, "alice", productID).Return(nil).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Delete("/api/v1/products/" + productID)
		require.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("delete missing returns 404", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockTracker(t)
		m.EXPECT().Delete(mock.Anything, "alice", productID).Return(store.ErrNotFound).Once()
		api := newProductsAPI(t, m, alice)

		resp := api.Delete("/api/v1/products/" + productID)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestProductsHandler_Verdict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verdict    engine.Verdict
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns verdict",
			verdict: engine.Verdict{
				ProductID: productID,
				Text:      "Buy now: the price is at its 30-day low.",
				Model:     "claude-haiku",
			},
			wantStatus: http.StatusOK,
			wantBody:   "30-day low",
		},
		{
			name:       "no backend returns 503",
			err:        engine.ErrVerdictUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown product returns 404",
			err:        store.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockTracker(t)
			m.EXPECT().Verdict(mock.Anything, "alice", productID).Return(tt.verdict, tt.err).Once()
			api := newProductsAPI(t, m, alice)

			resp := api.Post("/api/v1/products/" + productID + "/verdict")
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
