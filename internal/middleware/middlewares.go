package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fennelworks/catalog-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP
// server, wired once with their shared dependencies.
type Middlewares struct {
	// Global holds middleware used across the whole API: CORS, request
	// logging, recovery, secure headers, rate limiting, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger carrying correlation fields.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware; a no-op when APM is not
	// configured.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
