package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render      *render.Render
	cartService *services.CartService
	validator   *validator.Validate
}

func NewCartHandler(r *render.Render, cartService *services.CartService, validate *validator.Validate) *CartHandler {
	return &CartHandler{render: r, cartService: cartService, validator: validate}
}

type entityRef struct {
	ID string `json:"id" validate:"required"`
}

type addToCartRequest struct {
	Item        entityRef `json:"item" validate:"required"`
	CurrentUser entityRef `json:"currentUser" validate:"required"`
}

type removeFromCartRequest struct {
	CurrentUser entityRef `json:"currentUser" validate:"required"`
}

type prodOrderPair struct {
	OrderID   string `json:"order_id" validate:"required"`
	ProductID string `json:"prod_id" validate:"required"`
}

type userOrderPair struct {
	OrderID string `json:"order_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

func (h *CartHandler) GetMyCart(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["userId"]

	cart, err := h.cartService.ListCart(req.Context(), userID)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, req *http.Request) {
	var input addToCartRequest
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mutation, err := h.cartService.AddItemToCart(req.Context(), input.CurrentUser.ID, input.Item.ID)
	if err != nil {
		// Over-stock adds are reported, not failed: nothing was persisted
		// and the client gets a plain message.
		if errors.Is(err, apperrors.ErrStockExceeded) {
			_ = h.render.JSON(w, http.StatusOK, map[string]any{
				"message": "requested quantity exceeds available stock",
			})
			return
		}
		writeError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]any{
		"message":  "item added to cart",
		"order_id": mutation.OrderID,
		"prod_id":  mutation.ProductID,
		"quantity": mutation.Quantity,
		"stock":    mutation.Stock,
	})
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, req *http.Request) {
	productID := mux.Vars(req)["prodId"]

	var input removeFromCartRequest
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.cartService.RemoveItemFromCart(req.Context(), input.CurrentUser.ID, productID); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"message": "item removed from cart"})
}

func (h *CartHandler) BulkProdOrder(w http.ResponseWriter, req *http.Request) {
	var inputs []prodOrderPair
	if err := decodeJSON(req, &inputs); err != nil {
		writeError(h.render, w, err)
		return
	}

	pairs := make([]services.AssociationPair, 0, len(inputs))
	for _, input := range inputs {
		if err := h.validator.Struct(input); err != nil {
			writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
			return
		}
		pairs = append(pairs, services.AssociationPair{OrderID: input.OrderID, OtherID: input.ProductID})
	}

	if err := h.cartService.BulkAssociate(req.Context(), services.AssociationProductOrder, pairs); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("%d product-order associations created", len(pairs)),
	})
}

func (h *CartHandler) BulkUserOrder(w http.ResponseWriter, req *http.Request) {
	var inputs []userOrderPair
	if err := decodeJSON(req, &inputs); err != nil {
		writeError(h.render, w, err)
		return
	}

	pairs := make([]services.AssociationPair, 0, len(inputs))
	for _, input := range inputs {
		if err := h.validator.Struct(input); err != nil {
			writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
			return
		}
		pairs = append(pairs, services.AssociationPair{OrderID: input.OrderID, OtherID: input.UserID})
	}

	if err := h.cartService.BulkAssociate(req.Context(), services.AssociationUserOrder, pairs); err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("%d user-order associations created", len(pairs)),
	})
}
