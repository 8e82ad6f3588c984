package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

type HomeHandler struct {
	render *render.Render
}

func NewHomeHandler(r *render.Render) *HomeHandler {
	return &HomeHandler{render: r}
}

func (h *HomeHandler) Home(w http.ResponseWriter, req *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"service": "artesania-api",
		"status":  "ok",
	})
}
