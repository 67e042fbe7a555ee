package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/server"
	"github.com/fennelworks/catalog-api/internal/service"
	"github.com/fennelworks/catalog-api/internal/validation"
)

// CreateUserRequest is the create-shape for users. The password is
// accepted in plaintext here only; it is hashed before persistence and
// never echoed back.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// GetUserRequest binds the user identifier from the request path.
// Like items, any well-formed integer id flows to the lookup; an id
// that matches no row is a not-found result, not a validation failure.
type GetUserRequest struct {
	ID int64 `param:"id"`
}

func (r *GetUserRequest) Validate() error {
	return validation.Struct(r)
}

// UserResponse is the output-shape for users: identifier, username,
// and email. Neither the password nor its hash ever appears here.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserResponse(user *repository.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// UserHandler serves the user endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUser handles POST /users. A duplicate username or email yields
// a 409 conflict.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*UserResponse, error) {
	user, err := h.users.CreateUser(c.Request().Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*UserResponse, error) {
	user, err := h.users.GetUser(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}
