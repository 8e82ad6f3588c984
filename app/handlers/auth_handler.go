package handlers

import (
	"fmt"
	"net/http"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/artesania/artesania-api/app/middlewares"
	"github.com/artesania/artesania-api/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render      *render.Render
	authService *services.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(r *render.Render, authService *services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{render: r, authService: authService, validator: validate}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, req *http.Request) {
	var input services.RegisterInput
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.authService.Register(req.Context(), input)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, user.Serialize())
}

func (h *AuthHandler) Login(w http.ResponseWriter, req *http.Request) {
	var input loginRequest
	if err := decodeJSON(req, &input); err != nil {
		writeError(h.render, w, err)
		return
	}
	if err := h.validator.Struct(input); err != nil {
		writeError(h.render, w, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error()))
		return
	}

	token, user, err := h.authService.Login(req.Context(), input.Email, input.Password)
	if err != nil {
		writeError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user.Serialize(),
	})
}

// Protected returns the user resolved from the bearer token by the auth
// middleware.
func (h *AuthHandler) Protected(w http.ResponseWriter, req *http.Request) {
	user, ok := middlewares.CurrentUser(req.Context())
	if !ok {
		writeError(h.render, w, apperrors.ErrUnauthorized)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, user.Serialize())
}
