package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelworks/catalog-api/internal/errs"
	"github.com/fennelworks/catalog-api/internal/repository"
)

// fakeUserStore enforces the same uniqueness the real table does,
// returning the pgconn error shape the driver would.
type fakeUserStore struct {
	users  map[int64]*repository.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*repository.User), nextID: 1}
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*repository.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) Create(_ context.Context, params repository.CreateUserParams) (*repository.User, error) {
	for _, existing := range f.users {
		if existing.Email == params.Email {
			return nil, &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_email_key",
			}
		}
		if existing.Username == params.Username {
			return nil, &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_username_key",
			}
		}
	}

	now := time.Now()
	user := &repository.User{
		ID:             f.nextID,
		Username:       params.Username,
		Email:          params.Email,
		HashedPassword: params.HashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.users[user.ID] = user
	f.nextID++
	return user, nil
}

// recordingEnqueuer records welcome email enqueues.
type recordingEnqueuer struct {
	to       []string
	username []string
}

func (r *recordingEnqueuer) EnqueueWelcomeEmail(to, username string) error {
	r.to = append(r.to, to)
	r.username = append(r.username, username)
	return nil
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, testLogger())

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret", user.HashedPassword)
	assert.NotContains(t, user.HashedPassword, "secret")
	assert.True(t, strings.HasPrefix(user.HashedPassword, "$2"))
	assert.NoError(t, CheckPassword(user.HashedPassword, "secret"))
}

func TestUserServiceCreateThenGet(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, testLogger())

	created, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	byID, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := svc.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)
}

func TestUserServiceDuplicateEmailIsConflict(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, testLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)

	// The failed attempt must not have written a second row.
	assert.Len(t, store.users, 1)
}

func TestUserServiceDuplicateUsernameIsConflict(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, testLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "other",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Len(t, store.users, 1)
}

func TestUserServiceGetMissingIsNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), nil, testLogger())

	_, err := svc.GetUser(context.Background(), 7)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)

	_, err = svc.GetUserByEmail(context.Background(), "nobody@example.com")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestUserServiceCreateEnqueuesWelcomeEmail(t *testing.T) {
	store := newFakeUserStore()
	enqueuer := &recordingEnqueuer{}
	svc := NewUserService(store, enqueuer, testLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	require.Len(t, enqueuer.to, 1)
	assert.Equal(t, "alice@example.com", enqueuer.to[0])
	assert.Equal(t, "alice", enqueuer.username[0])
}

func TestUserServiceConflictSkipsWelcomeEmail(t *testing.T) {
	store := newFakeUserStore()
	enqueuer := &recordingEnqueuer{}
	svc := NewUserService(store, enqueuer, testLogger())

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), CreateUserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	require.Error(t, err)

	assert.Len(t, enqueuer.to, 1)
}
