// Package errs defines the error types returned to API clients.
//
// It provides the HTTPError response schema and field-level validation
// errors so clients receive consistent, actionable error payloads.
package errs
