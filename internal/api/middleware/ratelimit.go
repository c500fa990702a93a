package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/labstack/echo/v4"
)

// RateLimit returns Echo middleware that limits each client IP to perSecond
// requests with the given burst on paths under the listed prefixes. A
// non-positive rate disables it.
func RateLimit(perSecond float64, burst int, prefixes ...string) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Hour,
	})
	if burst > 0 {
		lmt.SetBurst(burst)
	}

	limited := func(path string) bool {
		if len(prefixes) == 0 {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limited(c.Request().URL.Path) {
				return next(c)
			}
			if herr := tollbooth.LimitByKeys(lmt, []string{c.RealIP()}); herr != nil {
				c.Response().Header().Set("Retry-After", "1")
				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				return c.JSON(http.StatusTooManyRequests, problem{
					Title:     http.StatusText(http.StatusTooManyRequests),
					Status:    http.StatusTooManyRequests,
					Detail:    "rate limit exceeded",
					RequestID: RequestID(c),
				})
			}
			return next(c)
		}
	}
}
