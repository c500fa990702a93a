package extract_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/pkg/extract"
	"github.com/shrutirout/foxdeal/pkg/llm"
	llmmocks "github.com/shrutirout/foxdeal/pkg/llm/mocks"
	"github.com/shrutirout/foxdeal/pkg/platform"
)

func pageServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func pageRequest(t *testing.T, u string) extract.Request {
	t.Helper()
	cfg := platform.Detect(u)
	prompt, err := extract.RenderInstruction(cfg)
	require.NoError(t, err)
	return extract.Request{URL: u, Platform: cfg, Prompt: prompt, Schema: extract.ProductSchema()}
}

func TestLLMService_Extract(t *testing.T) {
	t.Parallel()

	srv := pageServer(t, http.StatusOK, jsonLDPage)

	backend := llmmocks.NewMockBackend(t)
	backend.EXPECT().Name().Return("ollama").Maybe()
	backend.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r llm.Request) bool {
			return r.Format == llm.FormatJSON &&
				containsAll(r.Prompt,
					"Page title: Philips HD9252/90 Air Fryer | Croma",
					`"productName"`,
					"Rapid air technology.",
					"Structured data found on the page",
				)
		})).
		Return(llm.Response{Content: "```json\n{\"productName\":\"Philips HD9252/90 Air Fryer\",\"currentPrice\":\"₹7,999\",\"rating\":4.3}\n```"}, nil).
		Once()

	svc := extract.NewLLMService(backend, extract.WithLLMHTTPClient(srv.Client()))
	assert.Equal(t, "llm:ollama", svc.Name())

	raw, err := svc.Extract(context.Background(), pageRequest(t, srv.URL+"/p/243517"))
	require.NoError(t, err)
	assert.Equal(t, "Philips HD9252/90 Air Fryer", raw.ProductName)
	assert.True(t, raw.CurrentPrice.Amount.Equal(decimal.NewFromInt(7999)))
}

func TestLLMService_Extract_Errors(t *testing.T) {
	t.Parallel()

	t.Run("page not found", func(t *testing.T) {
		t.Parallel()

		srv := pageServer(t, http.StatusNotFound, "gone")
		backend := llmmocks.NewMockBackend(t)

		_, err := extract.NewLLMService(backend, extract.WithLLMHTTPClient(srv.Client())).
			Extract(context.Background(), pageRequest(t, srv.URL+"/p/1"))

		var he *extract.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.StatusCode)
	})

	t.Run("model rambles", func(t *testing.T) {
		t.Parallel()

		srv := pageServer(t, http.StatusOK, openGraphPage)
		backend := llmmocks.NewMockBackend(t)
		backend.EXPECT().Generate(mock.Anything, mock.Anything).
			Return(llm.Response{Content: "I could not find a price."}, nil).Once()

		_, err := extract.NewLLMService(backend, extract.WithLLMHTTPClient(srv.Client())).
			Extract(context.Background(), pageRequest(t, srv.URL+"/products/x"))
		require.ErrorIs(t, err, extract.ErrInvalidResponse)
	})

	t.Run("backend quota", func(t *testing.T) {
		t.Parallel()

		srv := pageServer(t, http.StatusOK, openGraphPage)
		backend := llmmocks.NewMockBackend(t)
		backend.EXPECT().Name().Return("gemini").Maybe()
		backend.EXPECT().Generate(mock.Anything, mock.Anything).
			Return(llm.Response{}, &llm.StatusError{Backend: "gemini", StatusCode: 429, Message: "RESOURCE_EXHAUSTED"}).Once()

		_, err := extract.NewLLMService(backend, extract.WithLLMHTTPClient(srv.Client())).
			Extract(context.Background(), pageRequest(t, srv.URL+"/products/x"))

		var se *llm.StatusError
		require.True(t, errors.As(err, &se))
		assert.True(t, se.RateLimited())
	})
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
