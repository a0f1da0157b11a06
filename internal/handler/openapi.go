package handler

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed docs/openapi.html docs/openapi.json
var docsFS embed.FS

// OpenAPIHandler serves the API reference and its interactive UI.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := docsFS.ReadFile("docs/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	doc, err := docsFS.ReadFile("docs/openapi.json")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	return c.JSONBlob(http.StatusOK, doc)
}
