package handlers

import (
	"fmt"
	"net/http"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// CatalogHandler serves the plain CRUD endpoints: users, products, orders,
// order items and favorites.
type CatalogHandler struct {
	render         *render.Render
	catalogService *services.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(r *render.Render, catalogService *services.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{render: r, catalogService: catalogService, validator: validate}
}

type createOrderRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CatalogHandler) validateEach(inputs any) error {
	switch typed := inputs.(type) {
	case []services.UserInput:
		for _, input := range typed {
			if err := h.validator.Struct(input); err != nil {
				return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error())
			}
		}
	case []services.ProductInput:
		for _, input := range typed {
			if err := h.validator.Struct(input); err != nil {
				return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error())
			}
		}
	}
	return nil
}

func (h *CatalogHandler) CreateUsers(w http.ResponseWriter, req *http.Request) {
	var inputs []services.UserInput
	if err := decodeJSON(req, &inputs); err != nil {
		writeError(h.render, w, err)
		return
	}
	if len(inputs) == 0 {
		writeError(h.render, w, fmt.Errorf("%w: empty user list", apperrors.ErrInvalidInput))
		return
	}
	if err := h.validateEach(inputs); err != nil {
		writeError(h.render, w, err)
		return
	}

	users, err := h.catalogService.CreateUsers(req.Context(), inputs)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, users)
}

func (h *CatalogHandler) ListUsers(w http.ResponseWriter, req *http.Request) {
	users, err := h.catalogService.ListUsers(req.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, users)
}

func (h *CatalogHandler) CreateProducts(w http.ResponseWriter, req *http.Request) {
	var inputs []services.ProductInput
	if err := decodeJSON(req, &inputs); err != nil {
		writeError(h.render, w, err)
		return
	}
	if len(inputs) == 0 {
		writeError(h.render, w, fmt.Errorf("%w: empty product list", apperrors.ErrInvalidInput))
		return
	}
	if err := h.validateEach(inputs); err != nil {
		writeError(h.render, w, err)
		return
	}

	products, err := h.catalogService.CreateProducts(req.Context(), inputs)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, products)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, req *http.Request) {
	products, err := h.catalogService.ListProducts(req.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, req *http.Request) {
	product, err := h.catalogService.GetProduct(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) CreateOrder(w http.ResponseWriter, req *http.Request) {
	var input createOrderRequest
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}

	order, err := h.catalogService.CreateOrder(req.Context(), input.Quantity)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, order)
}

func (h *CatalogHandler) ListOrders(w http.ResponseWriter, req *http.Request) {
	orders, err := h.catalogService.ListOrders(req.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *CatalogHandler) CreateOrderItem(w http.ResponseWriter, req *http.Request) {
	var input services.OrderItemInput
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.catalogService.CreateOrderItem(req.Context(), input)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) ListOrderItems(w http.ResponseWriter, req *http.Request) {
	items, err := h.catalogService.ListOrderItems(req.Context())
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) CreateFavorite(w http.ResponseWriter, req *http.Request) {
	var input services.FavoriteInput
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	favorite, err := h.catalogService.CreateFavorite(req.Context(), input)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, favorite)
}

func (h *CatalogHandler) ListFavorites(w http.ResponseWriter, req *http.Request) {
	favorites, err := h.catalogService.ListFavorites(req.Context(), req.URL.Query().Get("user_id"))
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, favorites)
}
