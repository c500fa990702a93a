// Package openapi serves interactive API reference docs for the OpenAPI 3.1
// document huma generates.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes renders the Scalar reference page for api's document and
// serves it at /docs. The document is embedded as it stands, so call this
// after every operation is registered.
func RegisterRoutes(e *echo.Echo, api huma.API, title string) error {
	spec, err := json.Marshal(api.OpenAPI())
	if err != nil {
		return fmt.Errorf("marshaling openapi document: %w", err)
	}

	html, err := scalargo.NewV2(
		scalargo.WithSpecBytes(spec),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle(title),
		),
	)
	if err != nil {
		return fmt.Errorf("rendering api reference: %w", err)
	}

	e.GET("/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, html)
	})
	e.GET("/docs/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/docs")
	})
	return nil
}
