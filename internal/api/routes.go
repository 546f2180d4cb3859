// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance.
// The paths mirror what the browser frontend calls.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health checks: "/" is what the docker healthcheck probes.
	e.GET("/", h.HandleHealth)
	e.GET("/health", h.HandleHealth)

	// Analysis
	e.POST("/analyze", h.HandleAnalyze)

	// Model selector
	e.GET("/models", h.HandleListModels)

	// Recent results
	e.GET("/results", h.HandleRecentResults)
	e.GET("/results/:id", h.HandleGetResult)
}
