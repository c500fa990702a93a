// Package middleware provides Echo middleware for the foxdeal API.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shrutirout/foxdeal/internal/metrics"
)

// unmatchedRoute is the route label for requests no handler claimed.
const unmatchedRoute = "unmatched"

// healthGauges are the health check routes. They set an up gauge and stay
// out of the request counters, as does the scrape endpoint.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
	"/metrics": nil,
}

// Metrics returns Echo middleware that records request count and latency
// per method, route template and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := routeLabel(c)
			if gauge, ok := healthGauges[route]; ok {
				err := next(c)
				if gauge != nil {
					gauge.Set(boolGauge(isSuccess(statusOf(c, err))))
				}
				return err
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			labels := []string{c.Request().Method, route, strconv.Itoa(statusOf(c, err))}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(elapsed.Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return err
		}
	}
}

// routeLabel returns the matched route template so path parameters do not
// fan out the label set. Health check paths keep their name even when unregistered.
func routeLabel(c echo.Context) string {
	switch p := c.Path(); p {
	case "", "/*":
		if isHealthCheck(c.Request().URL.Path) {
			return c.Request().URL.Path
		}
		return unmatchedRoute
	default:
		return p
	}
}

// statusOf returns the status the client will see. An error returned past
// this middleware is rendered later by the outer error handler, so the
// response is not yet written.
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func isHealthCheck(path string) bool {
	_, ok := healthGauges[path]
	return ok
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
