package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shrutirout/foxdeal/internal/identity"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(header string) (domain.User, bool)
}

// Auth returns Echo middleware that attaches the bearer token's user to the
// request context. Requests without a valid token pass through unchanged;
// handlers that need a user reject them.
func Auth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}
			if u, ok := a.Authenticate(header); ok {
				req := c.Request()
				c.SetRequest(req.WithContext(identity.WithUser(req.Context(), u)))
			}
			return next(c)
		}
	}
}
