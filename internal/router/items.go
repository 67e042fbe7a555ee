package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/handler"
)

// registerItemRoutes maps the item endpoints onto the v1 group.
func registerItemRoutes(g *echo.Group, h *handler.Handlers) {
	items := g.Group("/items")

	items.POST("", handler.Handle(h.Items.Handler, h.Items.CreateItem, http.StatusCreated))
	items.GET("/:id", handler.Handle(h.Items.Handler, h.Items.GetItem, http.StatusOK))
}
