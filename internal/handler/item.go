package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fennelworks/catalog-api/internal/repository"
	"github.com/fennelworks/catalog-api/internal/server"
	"github.com/fennelworks/catalog-api/internal/service"
	"github.com/fennelworks/catalog-api/internal/validation"
)

// CreateItemRequest is the create-shape for items: name and price are
// required, description and tax optional.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"required"`
	Tax         *int64  `json:"tax"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// GetItemRequest binds the item identifier from the request path.
// Any well-formed integer is looked up; ids that match no row (zero
// and negatives included) come back as not-found, not as invalid
// input. Only a non-numeric id fails binding.
type GetItemRequest struct {
	ID int64 `param:"id"`
}

func (r *GetItemRequest) Validate() error {
	return validation.Struct(r)
}

// ItemResponse is the output-shape for items: the stored fields plus
// the store-assigned identifier. Optional fields render as null.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       int64   `json:"price"`
	Tax         *int64  `json:"tax"`
}

func toItemResponse(item *repository.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Tax:         item.Tax,
	}
}

// ItemHandler serves the item endpoints.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

// NewItemHandler constructs an ItemHandler.
func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c echo.Context, req *CreateItemRequest) (*ItemResponse, error) {
	item, err := h.items.CreateItem(c.Request().Context(), repository.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Tax:         req.Tax,
	})
	if err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}

// GetItem handles GET /items/:id. An identifier with no matching row
// produces a 404 with no side effect.
func (h *ItemHandler) GetItem(c echo.Context, req *GetItemRequest) (*ItemResponse, error) {
	item, err := h.items.GetItem(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}
