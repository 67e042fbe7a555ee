package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/fennelworks/catalog-api/internal/logger"
	"github.com/fennelworks/catalog-api/internal/server"
)

// LoggerKey is the key the request-scoped logger is stored under, in
// both Echo context and the request's context.Context.
const LoggerKey = "logger"

// ContextEnhancer builds a request-scoped logger per request, carrying
// request_id, method, path, client IP, and trace identifiers when a
// New Relic transaction exists, and stores it in the request context so
// every layer logs with the same correlation fields.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer from the application
// container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the Echo middleware. It must run after
// RequestID and the tracing middleware so their fields are available.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Also store the logger in the Go request context so code
			// that only sees context.Context can retrieve it.
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

type loggerCtxKey struct{}

// GetLogger retrieves the request-scoped logger from Echo context.
// Returns a no-op logger when the enhancer has not run, so callers
// never nil-check.
func GetLogger(c echo.Context) *zerolog.Logger {
	if log, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}

// LoggerFromContext retrieves the request-scoped logger from a
// context.Context, with the same no-op fallback as GetLogger.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if log, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}
