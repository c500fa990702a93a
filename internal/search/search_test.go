package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/quota"
	"github.com/shrutirout/foxdeal/internal/search"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		sites []string
		want  string
	}{
		{name: "no sites", query: " iphone 15 ", want: "iphone 15"},
		{name: "one site", query: "iphone 15", sites: []string{"amazon.in"}, want: "iphone 15 (site:amazon.in)"},
		{
			name:  "several sites",
			query: "iphone 15",
			sites: []string{"amazon.in", "flipkart.com"},
			want:  "iphone 15 (site:amazon.in OR site:flipkart.com)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, search.BuildQuery(tt.query, tt.sites))
		})
	}
}

func TestSerperClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "boat airdopes 141 (site:amazon.in OR site:flipkart.com)", body["q"])
		assert.Equal(t, "in", body["gl"])
		assert.Equal(t, "en", body["hl"])
		assert.InDelta(t, 20, body["num"], 0)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[
			{"title":"boAt Airdopes 141","link":"https://www.amazon.in/dp/B09N3ZNHTY","snippet":"₹1,299","imageUrl":"https://m.media-amazon.com/a.jpg","price":"₹1,299.00","rating":4.1},
			{"title":"no link"},
			{"title":"boAt Airdopes 141 - Flipkart","link":"https://www.flipkart.com/boat/p/itm123","price":1199}
		]}`))
	}))
	defer srv.Close()

	c := search.NewSerperClient(
		search.WithSerperEndpoint(srv.URL),
		search.WithSerperAPIKey("test-key"),
	)

	got, err := c.Search(context.Background(), "boat airdopes 141", search.Options{
		Sites: []string{"amazon.in", "flipkart.com"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "https://www.amazon.in/dp/B09N3ZNHTY", got[0].Link)
	assert.Equal(t, "https://m.media-amazon.com/a.jpg", got[0].ImageURL)
	require.NotNil(t, got[0].Price)
	assert.Equal(t, "1299", got[0].Price.String())
	require.NotNil(t, got[0].Rating)
	assert.InDelta(t, 4.1, *got[0].Rating, 0.001)

	require.NotNil(t, got[1].Price)
	assert.Equal(t, "1199", got[1].Price.String())
}

func TestSerperClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		c := search.NewSerperClient(search.WithSerperAPIKey(""))
		_, err := c.Search(context.Background(), "kettle", search.Options{})
		require.ErrorIs(t, err, search.ErrMissingAPIKey)
	})

	t.Run("quota status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Not enough credits, quota exhausted"}`))
		}))
		defer srv.Close()

		c := search.NewSerperClient(search.WithSerperEndpoint(srv.URL), search.WithSerperAPIKey("k"))
		_, err := c.Search(context.Background(), "kettle", search.Options{})

		var se *search.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusForbidden, se.StatusCode)
		assert.True(t, se.RateLimited())
	})

	t.Run("limiter exhausted", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"organic":[]}`))
		}))
		defer srv.Close()

		c := search.NewSerperClient(
			search.WithSerperEndpoint(srv.URL),
			search.WithSerperAPIKey("k"),
			search.WithSerperLimiter(quota.New("serper", 0, 1, 1)),
		)
		_, err := c.Search(context.Background(), "kettle", search.Options{})
		require.NoError(t, err)

		_, err = c.Search(context.Background(), "kettle", search.Options{})
		var se *search.StatusError
		require.ErrorAs(t, err, &se)
		assert.True(t, se.RateLimited())
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestCSEClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "api-key", q.Get("key"))
		assert.Equal(t, "engine", q.Get("cx"))
		assert.Equal(t, "10", q.Get("num"))
		assert.Equal(t, "prestige kettle (site:amazon.in)", q.Get("q"))

		_, _ = w.Write([]byte(`{"items":[
			{"title":"Prestige PKOSS 1.5L","link":"https://www.amazon.in/dp/B01","snippet":"kettle",
			 "pagemap":{"offer":[{"price":"849.00"}],"cse_thumbnail":[{"src":"https://img/thumb.jpg"}]}},
			{"title":"Prestige Kettle","link":"https://www.amazon.in/dp/B02",
			 "pagemap":{"metatags":[{"og:price:amount":"1,049","og:image":"https://img/og.jpg"}]}},
			{"title":"No price","link":"https://www.amazon.in/dp/B03","pagemap":{"offer":[{"price":"0"}]}}
		]}`))
	}))
	defer srv.Close()

	c := search.NewCSEClient(
		search.WithCSEEndpoint(srv.URL),
		search.WithCSECredentials("api-key", "engine"),
	)

	got, err := c.Search(context.Background(), "prestige kettle", search.Options{
		Sites: []string{"amazon.in"},
		Num:   50,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.NotNil(t, got[0].Price)
	assert.Equal(t, "849", got[0].Price.String())
	assert.Equal(t, "https://img/thumb.jpg", got[0].ImageURL)

	require.NotNil(t, got[1].Price)
	assert.Equal(t, "1049", got[1].Price.String())
	assert.Equal(t, "https://img/og.jpg", got[1].ImageURL)

	assert.Nil(t, got[2].Price)
	assert.Empty(t, got[2].ImageURL)
}

func TestCSEClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()
		c := search.NewCSEClient(search.WithCSECredentials("key", ""))
		_, err := c.Search(context.Background(), "kettle", search.Options{})
		require.ErrorIs(t, err, search.ErrMissingAPIKey)
	})

	t.Run("api error message", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded for quota metric 'Queries'"}}`))
		}))
		defer srv.Close()

		c := search.NewCSEClient(search.WithCSEEndpoint(srv.URL), search.WithCSECredentials("k", "cx"))
		_, err := c.Search(context.Background(), "kettle", search.Options{})

		var se *search.StatusError
		require.ErrorAs(t, err, &se)
		assert.True(t, se.RateLimited())
		assert.Contains(t, se.Message, "Quota exceeded")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		c := search.NewCSEClient(search.WithCSEEndpoint(srv.URL), search.WithCSECredentials("k", "cx"))
		_, err := c.Search(context.Background(), "kettle", search.Options{})
		require.Error(t, err)

		var se *search.StatusError
		assert.False(t, errors.As(err, &se))
	})
}
