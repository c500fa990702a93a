package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := loadCatalog(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	srv := httptest.NewServer(newMux(testLogger(), cat, testKey))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, header map[string]string, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	cat, err := loadCatalog(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	require.NotEmpty(t, cat.Items)
	for _, it := range cat.Items {
		assert.NotEmpty(t, it.Link)
		assert.NotEmpty(t, it.Price)
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	terms, sites := parseQuery("Apple iPhone 15 (site:amazon.in OR site:croma.com)")
	assert.Equal(t, []string{"apple", "iphone", "15"}, terms)
	assert.Equal(t, []string{"amazon.in", "croma.com"}, sites)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	tests := []struct {
		name      string
		key       string
		query     string
		wantCode  int
		wantLinks []string
	}{
		{
			name:     "site filter",
			key:      testKey,
			query:    "iphone 15 128 (site:amazon.in OR site:croma.com)",
			wantCode: http.StatusOK,
			wantLinks: []string{
				"https://www.amazon.in/Apple-iPhone-15-128-GB/dp/B0CHX1W1XY",
				"https://www.croma.com/apple-iphone-15-128gb-blue-/p/300652",
			},
		},
		{
			name:      "no match",
			key:       testKey,
			query:     "pixel 9",
			wantCode:  http.StatusOK,
			wantLinks: []string{},
		},
		{
			name:     "wrong key",
			key:      "nope",
			query:    "iphone",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, _ := json.Marshal(map[string]any{"q": tt.query, "num": 20})
			resp, out := post(t, srv.URL+"/search", map[string]string{"X-API-KEY": tt.key}, string(body))
			require.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantCode != http.StatusOK {
				return
			}

			organic, ok := out["organic"].([]any)
			require.True(t, ok)
			links := []string{}
			for _, o := range organic {
				links = append(links, o.(map[string]any)["link"].(string))
			}
			assert.Equal(t, tt.wantLinks, links)
		})
	}
}

func TestScrape(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	auth := map[string]string{"Authorization": "Bearer " + testKey}

	t.Run("known page", func(t *testing.T) {
		t.Parallel()

		resp, out := post(t, srv.URL+"/v1/scrape", auth,
			`{"url":"https://www.amazon.in/Apple-iPhone-15-128-GB/dp/B0CHX1W1XY","formats":["extract"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, out["success"])

		extract := out["data"].(map[string]any)["extract"].(map[string]any)
		assert.Equal(t, "Apple iPhone 15 (128 GB) - Blue", extract["productName"])
		assert.Equal(t, "₹64,999", extract["currentPrice"])
		assert.Equal(t, "INR", extract["currencyCode"])
	})

	t.Run("unknown page has empty extract", func(t *testing.T) {
		t.Parallel()

		resp, out := post(t, srv.URL+"/v1/scrape", auth, `{"url":"https://www.example.com/p/1"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		extract := out["data"].(map[string]any)["extract"].(map[string]any)
		assert.Empty(t, extract["productName"])
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		resp, out := post(t, srv.URL+"/v1/scrape", nil, `{"url":"https://www.example.com/p/1"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, out["success"])
	})
}
