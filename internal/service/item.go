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

// ItemStore is the data-access surface the item service needs.
// *repository.ItemRepository satisfies it; tests use an in-memory fake.
type ItemStore interface {
	GetByID(ctx context.Context, id int64) (*repository.Item, error)
	Create(ctx context.Context, params repository.CreateItemParams) (*repository.Item, error)
}

// ItemService exposes the item operations: get by id and create.
type ItemService struct {
	store  ItemStore
	logger *zerolog.Logger
}

// NewItemService constructs an ItemService on the given store.
func NewItemService(store ItemStore, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		store:  store,
		logger: logger,
	}
}

// GetItem returns the item with the given identifier. An identifier
// that matches no row yields a 404 error, not a fault.
func (s *ItemService) GetItem(ctx context.Context, id int64) (*repository.Item, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Item not found", false, nil)
		}
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}

// CreateItem inserts a new item and returns the persisted record
// including its store-assigned identifier.
func (s *ItemService) CreateItem(ctx context.Context, params repository.CreateItemParams) (*repository.Item, error) {
	item, err := s.store.Create(ctx, params)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.logger.Info().Int64("item_id", item.ID).Msg("item created")
	return item, nil
}
