package handler

import (
	"github.com/fennelworks/catalog-api/internal/server"
	"github.com/fennelworks/catalog-api/internal/service"
)

// Handlers is the container grouping all HTTP handlers, so router
// setup passes one object around.
type Handlers struct {
	Health *HealthHandler
	Items  *ItemHandler
	Users  *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Items:  NewItemHandler(s, services.Items),
		Users:  NewUserHandler(s, services.Users),
	}
}
