package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Item is a catalog item row. Description and Tax are nullable.
type Item struct {
	ID          int64
	Name        string
	Description *string
	Price       int64
	Tax         *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateItemParams carries the fields required to insert an item.
type CreateItemParams struct {
	Name        string
	Description *string
	Price       int64
	Tax         *int64
}

const (
	itemInsert = `INSERT INTO items (name, description, price, tax)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, tax, created_at, updated_at`

	itemSelectByID = `SELECT id, name, description, price, tax, created_at, updated_at
		FROM items
		WHERE id = $1`
)

// ItemRepository performs item reads and inserts against the store.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository constructs an ItemRepository on the shared pool.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// GetByID fetches an item by its identifier. A missing row surfaces as
// pgx.ErrNoRows, which callers translate into a not-found result.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	row := r.pool.QueryRow(ctx, itemSelectByID, id)

	var item Item
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Tax, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item and returns the persisted row including
// its store-assigned identifier.
func (r *ItemRepository) Create(ctx context.Context, params CreateItemParams) (*Item, error) {
	row := r.pool.QueryRow(ctx, itemInsert, params.Name, params.Description, params.Price, params.Tax)

	var item Item
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Tax, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
