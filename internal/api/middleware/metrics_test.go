package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/shrutirout/foxdeal/internal/api/middleware"
	"github.com/shrutirout/foxdeal/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response",
			method: http.MethodGet,
			path:   "/api/v1/quota",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 404 response",
			method: http.MethodGet,
			path:   "/api/v1/products/missing",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			path:   "/api/v1/compare",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "records status of returned error",
			method: http.MethodPost,
			path:   "/api/v1/sweep",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusConflict, "sweep already running")
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.path, tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			status := strconv.Itoa(tt.wantStatus)
			assert.Positive(t, requestCount(t, tt.method, tt.path, status))
			assert.Positive(t, latencySamples(t, tt.method, tt.path, status))
		})
	}
}

func TestMetricsMiddleware_HealthGauge(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	healthy := true
	e.GET("/readyz", func(c echo.Context) error {
		if healthy {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	serve := func() {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
	}

	serve()
	assert.InDelta(t, 1.0, gaugeValue(t, metrics.ReadyzUp), 1e-9)

	healthy = false
	serve()
	assert.InDelta(t, 0.0, gaugeValue(t, metrics.ReadyzUp), 1e-9)
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wp-login.php", http.NoBody))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Positive(t, requestCount(t, http.MethodGet, "unmatched", "404"))
}

func TestMetricsMiddleware_HealthChecksSkipCounters(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.InDelta(t, 1.0, gaugeValue(t, metrics.HealthzUp), 1e-9)
	assert.Zero(t, requestCount(t, http.MethodGet, "/healthz", "200"))
}

func requestCount(t *testing.T, labels ...string) float64 {
	t.Helper()
	c, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func latencySamples(t *testing.T, labels ...string) uint64 {
	t.Helper()
	o, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, o.(prometheus.Metric).Write(m))
	return m.GetHistogram().GetSampleCount()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	m := &io_prometheus_client.Metric{}
	require.NoError(t, g.Write(m))
	return m.GetGauge().GetValue()
}
