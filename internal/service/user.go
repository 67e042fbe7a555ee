package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/fennelworks/catalog-api/internal/errs"
	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/sqlerr"
)

// UserStore is the data-access surface the user service needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*repository.User, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	Create(ctx context.Context, params repository.CreateUserParams) (*repository.User, error)
}

// WelcomeEnqueuer enqueues the post-registration welcome email job.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(to, username string) error
}

// CreateUserInput carries the validated fields for user registration.
// Password is plaintext here and only here; it is hashed before the
// store is touched and never logged or returned.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UserService exposes user registration and lookups.
type UserService struct {
	store    UserStore
	enqueuer WelcomeEnqueuer
	logger   *zerolog.Logger
}

// NewUserService constructs a UserService. enqueuer may be nil when
// background jobs are disabled; registration then skips the welcome
// email.
func NewUserService(store UserStore, enqueuer WelcomeEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		store:    store,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// GetUser returns the user with the given identifier, or a 404 error
// when no row matches.
func (s *UserService) GetUser(ctx context.Context, id int64) (*repository.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", false, nil)
		}
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

// GetUserByEmail returns the first user with the given email, or a 404
// error when no row matches.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*repository.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("User not found", false, nil)
		}
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

// CreateUser hashes the plaintext password and inserts the user. A
// duplicate username or email surfaces as a 409 conflict from the
// store's unique constraints; no second row is written and nothing is
// retried. On success a welcome email job is enqueued best-effort.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*repository.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, errs.NewInternalServerError()
	}

	user, err := s.store.Create(ctx, repository.CreateUserParams{
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hash,
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user created")

	// Registration already succeeded; a failed enqueue only loses the
	// welcome email, so it is logged and not surfaced.
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWelcomeEmail(user.Email, user.Username); err != nil {
			s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}
