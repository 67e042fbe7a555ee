package repository

import (
	"github.com/fennelworks/catalog-api/internal/server"
)

// Repositories is the container for all repository instances, built
// once at startup and shared by the service layer.
type Repositories struct {
	Items *ItemRepository
	Users *UserRepository
}

// NewRepositories constructs the repository container from the shared
// application dependencies.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemRepository(s.DB.Pool),
		Users: NewUserRepository(s.DB.Pool),
	}
}
