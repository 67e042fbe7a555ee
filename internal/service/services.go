package service

import (
	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/server"
)

// Services is the container for all business-logic services, built
// once at startup and shared by the handler layer.
type Services struct {
	Items *ItemService
	Users *UserService
}

// NewServices constructs the service container from the shared
// application dependencies and the repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items: NewItemService(repos.Items, s.Logger),
		Users: NewUserService(repos.Users, s.Job, s.Logger),
	}, nil
}
