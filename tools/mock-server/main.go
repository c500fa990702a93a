// Package main implements mock Serper and Firecrawl servers for local
// development. Both serve canned responses from one JSON catalog so a full
// compare can run without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type catalogItem struct {
	Title         string  `json:"title"`
	Link          string  `json:"link"`
	Snippet       string  `json:"snippet"`
	Price         string  `json:"price"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	ImageURL      string  `json:"imageUrl"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Seller        string  `json:"seller"`
}

type catalog struct {
	Items []catalogItem `json:"items"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	apiKey := flag.String("api-key", "mock-key", "API key both mock services accept")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadCatalog(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded catalog", "items", len(cat.Items))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock upstreams", "addr", addr,
		"serper_endpoint", "http://localhost"+addr,
		"firecrawl_endpoint", "http://localhost"+addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cat, *apiKey)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cat *catalog, apiKey string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /search", searchHandler(logger, cat, apiKey))
	mux.HandleFunc("POST /v1/scrape", scrapeHandler(logger, cat, apiKey))
	return mux
}

func loadCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &c, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// parseQuery splits a search query into lowercase terms and site: filters.
func parseQuery(q string) (terms, sites []string) {
	for _, f := range strings.Fields(strings.ToLower(q)) {
		f = strings.Trim(f, "()")
		switch {
		case f == "" || f == "or":
		case strings.HasPrefix(f, "site:"):
			sites = append(sites, strings.TrimPrefix(f, "site:"))
		default:
			terms = append(terms, f)
		}
	}
	return terms, sites
}

func (it *catalogItem) host() string {
	u, err := url.Parse(it.Link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// matches reports whether every term appears in the title and the link
// is on one of sites, when any are given.
func (it *catalogItem) matches(terms, sites []string) bool {
	title := strings.ToLower(it.Title)
	for _, t := range terms {
		if !strings.Contains(title, t) {
			return false
		}
	}
	if len(sites) == 0 {
		return true
	}
	host := it.host()
	for _, s := range sites {
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}

func searchHandler(logger *slog.Logger, cat *catalog, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-KEY") != apiKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized.", "statusCode": 401})
			return
		}

		var req struct {
			Q   string `json:"q"`
			Num int    `json:"num"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body", "statusCode": 400})
			return
		}

		terms, sites := parseQuery(req.Q)
		organic := []map[string]any{}
		for i := range cat.Items {
			it := &cat.Items[i]
			if !it.matches(terms, sites) {
				continue
			}
			organic = append(organic, map[string]any{
				"title":    it.Title,
				"link":     it.Link,
				"snippet":  it.Snippet,
				"imageUrl": it.ImageURL,
				"rating":   it.Rating,
				"price":    it.Price,
				"position": len(organic) + 1,
			})
			if req.Num > 0 && len(organic) >= req.Num {
				break
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"searchParameters": map[string]any{"q": req.Q, "type": "search", "engine": "google"},
			"organic":          organic,
		})
		logger.Info("search", "query", req.Q, "matched", len(organic))
	}
}

func scrapeHandler(logger *slog.Logger, cat *catalog, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Unauthorized: Invalid token"})
			return
		}

		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "url is required"})
			return
		}

		var found *catalogItem
		for i := range cat.Items {
			if cat.Items[i].Link == req.URL {
				found = &cat.Items[i]
				break
			}
		}
		if found == nil {
			// The real service scrapes whatever page it is given; an unknown
			// page yields an empty extract.
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{
					"extract":  map[string]any{"productName": "", "currentPrice": nil},
					"metadata": map[string]any{"sourceURL": req.URL, "statusCode": 404},
				},
			})
			logger.Info("scrape miss", "url", req.URL)
			return
		}

		extract := map[string]any{
			"productName":     found.Title,
			"productUrl":      found.Link,
			"currentPrice":    found.Price,
			"currencyCode":    "INR",
			"productImageUrl": found.ImageURL,
			"sellerName":      found.Seller,
			"rating":          found.Rating,
			"reviewCount":     found.ReviewCount,
		}
		if found.OriginalPrice != "" {
			extract["originalPrice"] = found.OriginalPrice
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"extract":  extract,
				"metadata": map[string]any{"sourceURL": req.URL, "statusCode": 200},
			},
		})
		logger.Info("scrape", "url", req.URL)
	}
}
