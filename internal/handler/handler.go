// Package handler is the entry point for business logic after the
// router.
//
// Each handler is a thin mapping: bind and validate the request, call
// exactly one service operation, and render the response shape. Errors
// flow back to the global error handler; no handler retries or holds
// state between invocations.
package handler
