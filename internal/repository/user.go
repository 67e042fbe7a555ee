package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a user row. HashedPassword holds the bcrypt hash of the
// password supplied at creation; the plaintext is never persisted.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateUserParams carries the fields required to insert a user. The
// password must already be hashed by the caller.
type CreateUserParams struct {
	Username       string
	Email          string
	HashedPassword string
}

const (
	userInsert = `INSERT INTO users (username, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, hashed_password, created_at, updated_at`

	userSelectByID = `SELECT id, username, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1`

	userSelectByEmail = `SELECT id, username, email, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1`
)

// UserRepository performs user reads and inserts against the store.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository on the shared pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID fetches a user by identifier. A missing row surfaces as
// pgx.ErrNoRows.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	row := r.pool.QueryRow(ctx, userSelectByID, id)
	return scanUser(row)
}

// GetByEmail fetches the first user whose email equals the argument.
// Uniqueness is enforced by the store at insert time, not by this read.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx, userSelectByEmail, email)
	return scanUser(row)
}

// Create inserts a new user row. A duplicate username or email fails
// with a unique violation from the store; no second row is written.
func (r *UserRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	row := r.pool.QueryRow(ctx, userInsert, params.Username, params.Email, params.HashedPassword)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var user User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}
