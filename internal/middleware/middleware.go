// Package middleware holds global and route-specific middleware.
//
// These intercept requests for cross-cutting concerns: request IDs,
// request-scoped logging, CORS, rate limiting, panic recovery, tracing,
// and the global error handler that turns every error into the API's
// JSON error schema.
package middleware
