package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/middleware"
	"github.com/fennelworks/catalog-api/internal/server"
	"github.com/fennelworks/catalog-api/internal/validation"
)

// Handler is the base type holding shared application dependencies,
// embedded by concrete handlers.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value; it only
// carries a pointer, so copies are cheap and share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// BindableRequest constrains request types so the pipeline can
// construct a fresh instance per request and validate it. Request
// types implement Validate on their pointer receiver.
type BindableRequest[T any] interface {
	*T
	validation.Validatable
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc.
//
// Per request it:
//  1. allocates a fresh request value (no state shared across requests)
//  2. binds body and path parameters, then validates
//  3. invokes the endpoint function
//  4. writes the result as JSON with the given status
//
// Validation and endpoint errors are returned for the global error
// handler to render.
func Handle[Req any, PReq BindableRequest[Req], Res any](
	h Handler,
	fn func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := middleware.GetLogger(c)

		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			logger.Warn().Err(err).Msg("request validation failed")
			return err
		}

		result, err := fn(c, req)
		if err != nil {
			return err
		}

		return c.JSON(status, result)
	}
}
