package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint for load balancers and monitors.
	r.GET("/status", h.Health.CheckHealth)
}
