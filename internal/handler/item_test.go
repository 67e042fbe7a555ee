package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelworks/catalog-api/internal/errs"
	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/service"
)

type fakeItemStore struct {
	items  map[int64]*repository.Item
	nextID int64
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int64]*repository.Item), nextID: 1}
}

func (f *fakeItemStore) GetByID(_ context.Context, id int64) (*repository.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return item, nil
}

func (f *fakeItemStore) Create(_ context.Context, params repository.CreateItemParams) (*repository.Item, error) {
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

func nopLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

func newItemHandler(store *fakeItemStore) *ItemHandler {
	return &ItemHandler{
		Handler: Handler{},
		items:   service.NewItemService(store, nopLogger()),
	}
}

func postJSON(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func getByID(t *testing.T, path, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestCreateItemReturnsCreatedBody(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, rec := postJSON(t, "/api/v1/items", `{"name":"Widget","price":10}`)

	err := Handle(h.Handler, h.CreateItem, http.StatusCreated)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Widget","description":null,"price":10,"tax":null}`,
		rec.Body.String())
}

func TestCreateItemWithOptionalFields(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, rec := postJSON(t, "/api/v1/items",
		`{"name":"Widget","description":"A widget","price":10,"tax":2}`)

	err := Handle(h.Handler, h.CreateItem, http.StatusCreated)(c)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"name":"Widget","description":"A widget","price":10,"tax":2}`,
		rec.Body.String())
}

func TestCreateItemMissingRequiredFields(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, _ := postJSON(t, "/api/v1/items", `{"description":"no name or price"}`)

	err := Handle(h.Handler, h.CreateItem, http.StatusCreated)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Len(t, httpErr.Errors, 2)
}

func TestCreateItemZeroPriceAllowed(t *testing.T) {
	// Zero is a valid price; required on a *int64 only rejects absence.
	h := newItemHandler(newFakeItemStore())
	c, rec := postJSON(t, "/api/v1/items", `{"name":"Freebie","price":0}`)

	err := Handle(h.Handler, h.CreateItem, http.StatusCreated)(c)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":1,"name":"Freebie","description":null,"price":0,"tax":null}`,
		rec.Body.String())
}

func TestGetItemRoundtrip(t *testing.T) {
	store := newFakeItemStore()
	h := newItemHandler(store)

	c, _ := postJSON(t, "/api/v1/items", `{"name":"Widget","price":10}`)
	require.NoError(t, Handle(h.Handler, h.CreateItem, http.StatusCreated)(c))

	c, rec := getByID(t, "/api/v1/items/:id", "1")
	err := Handle(h.Handler, h.GetItem, http.StatusOK)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, int64(10), resp.Price)
}

func TestGetItemMissingIsNotFound(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, _ := getByID(t, "/api/v1/items/:id", "42")

	err := Handle(h.Handler, h.GetItem, http.StatusOK)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Item not found", httpErr.Message)
}

func TestGetItemZeroIDIsNotFound(t *testing.T) {
	// Zero parses as a valid id; it simply matches no row.
	h := newItemHandler(newFakeItemStore())
	c, _ := getByID(t, "/api/v1/items/:id", "0")

	err := Handle(h.Handler, h.GetItem, http.StatusOK)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Item not found", httpErr.Message)
}

func TestGetItemNegativeIDIsNotFound(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, _ := getByID(t, "/api/v1/items/:id", "-3")

	err := Handle(h.Handler, h.GetItem, http.StatusOK)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestGetItemInvalidID(t *testing.T) {
	h := newItemHandler(newFakeItemStore())
	c, _ := getByID(t, "/api/v1/items/:id", "abc")

	err := Handle(h.Handler, h.GetItem, http.StatusOK)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}
