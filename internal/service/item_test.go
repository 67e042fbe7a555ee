package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelworks/catalog-api/internal/errs"
	"github.com/fennelworks/catalog-api/internal/repository"
)

// fakeItemStore keeps items in a map and assigns sequential IDs, the
// way the real store does.
type fakeItemStore struct {
	items  map[int64]*repository.Item
	nextID int64
	err    error
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int64]*repository.Item), nextID: 1}
}

func (f *fakeItemStore) GetByID(_ context.Context, id int64) (*repository.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return item, nil
}

func (f *fakeItemStore) Create(_ context.Context, params repository.CreateItemParams) (*repository.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now()
	item := &repository.Item{
		ID:          f.nextID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Tax:         params.Tax,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.items[item.ID] = item
	f.nextID++
	return item, nil
}

func testLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

func TestItemServiceCreateThenGet(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store, testLogger())

	desc := "A widget"
	tax := int64(2)
	created, err := svc.CreateItem(context.Background(), repository.CreateItemParams{
		Name:        "Widget",
		Description: &desc,
		Price:       10,
		Tax:         &tax,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.GetItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestItemServiceCreateOptionalFieldsAbsent(t *testing.T) {
	store := newFakeItemStore()
	svc := NewItemService(store, testLogger())

	created, err := svc.CreateItem(context.Background(), repository.CreateItemParams{
		Name:  "Widget",
		Price: 10,
	})
	require.NoError(t, err)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.Tax)
}

func TestItemServiceGetMissingIsNotFound(t *testing.T) {
	svc := NewItemService(newFakeItemStore(), testLogger())

	_, err := svc.GetItem(context.Background(), 42)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Item not found", httpErr.Message)
}

func TestItemServiceStoreFailureIsInternal(t *testing.T) {
	store := newFakeItemStore()
	store.err = errors.New("connection reset")
	svc := NewItemService(store, testLogger())

	_, err := svc.GetItem(context.Background(), 1)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}
