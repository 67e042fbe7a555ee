// Package router initializes the HTTP router (Echo).
//
// It registers the middleware chain and defines the API route groups,
// mapping paths to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/handler"
	"github.com/fennelworks/catalog-api/internal/middleware"
)

// apiV1Prefix is the base path for versioned API routes.
const apiV1Prefix = "/api/v1"

// New builds the Echo router with the full middleware chain and all
// route groups registered.
//
// Middleware order matters: tracing opens the transaction, request ID
// assigns the correlation ID, and the context enhancer builds the
// request-scoped logger from both.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())
	r.Use(m.Global.RateLimit())

	registerSystemRoutes(r, h)

	v1 := r.Group(apiV1Prefix)
	registerItemRoutes(v1, h)
	registerUserRoutes(v1, h)

	return r
}
