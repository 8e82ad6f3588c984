package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/artesania/artesania-api/app/models"
	"github.com/artesania/artesania-api/app/services"
	"github.com/unrolled/render"
)

type contextKey string

const currentUserKey contextKey = "current_user"

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok
}

// RequireAuth validates the Authorization bearer token and stores the
// resolved user in the request context.
func RequireAuth(r *render.Render, authService *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			header := req.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				_ = r.JSON(w, http.StatusUnauthorized, map[string]any{
					"message":     "missing bearer token",
					"status_code": http.StatusUnauthorized,
				})
				return
			}

			user, err := authService.Authenticate(req.Context(), token)
			if err != nil {
				_ = r.JSON(w, http.StatusUnauthorized, map[string]any{
					"message":     "invalid or expired token",
					"status_code": http.StatusUnauthorized,
				})
				return
			}

			ctx := context.WithValue(req.Context(), currentUserKey, user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
