package cmd

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrutirout/foxdeal/internal/config"
)

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("database:\n  host: localhost\n  name: foxdeal\n  user: fox\n"))
	require.NoError(t, err)

	e, err := newServer(cfg, &app{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "liveness", path: "/healthz", wantBody: `"ok"`},
		{name: "generated document", path: "/openapi.json", wantBody: "list-products"},
		{name: "api reference", path: "/docs", wantBody: "track-product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
