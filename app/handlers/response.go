package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/artesania/artesania-api/app/apperrors"
	"github.com/unrolled/render"
)

// ErrorBody is the uniform error shape for every failure response.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func writeError(r *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "unauthorized"
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		// Internal detail stays in the log.
		log.Printf("handler error: %v", err)
	}

	_ = r.JSON(w, status, ErrorBody{Message: message, StatusCode: status})
}

// decodeJSON decodes a request body strictly: unknown keys are rejected so
// clients cannot smuggle fields past the typed request structs.
func decodeJSON(req *http.Request, dst any) error {
	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}
