package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/handler"
)

// registerUserRoutes maps the user endpoints onto the v1 group.
func registerUserRoutes(g *echo.Group, h *handler.Handlers) {
	users := g.Group("/users")

	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK))
}
