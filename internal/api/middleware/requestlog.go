package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shrutirout/foxdeal/internal/identity"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID returns the ID RequestLog assigned to the request, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// RequestLog returns Echo middleware that assigns a request ID and logs one
// line per request. Server errors log at error level, client errors and
// failed health checks at warn. A health check path logs only when its
// outcome changes, so a healthy pod scraped every few seconds stays quiet.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	checks := &healthLog{healthy: map[string]bool{}}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			if err := next(c); err != nil {
				// Written here so the logged status is the one sent.
				c.Error(err)
			}

			status := c.Response().Status
			health := isHealthCheck(req.URL.Path)
			if health && !checks.changed(req.URL.Path, status < 400) {
				return nil
			}

			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if u, ok := identity.FromContext(req.Context()); ok {
				attrs = append(attrs, "user", u.ID)
			}
			log.Log(req.Context(), requestLevel(status, health), "request", attrs...)
			return nil
		}
	}
}

func requestLevel(status int, health bool) slog.Level {
	switch {
	case status >= 500 && !health:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// healthLog remembers the last outcome per health check path. Failures
// always count as a change.
type healthLog struct {
	mu      sync.Mutex
	healthy map[string]bool
}

func (p *healthLog) changed(path string, ok bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	was := p.healthy[path]
	p.healthy[path] = ok
	return !ok || !was
}
