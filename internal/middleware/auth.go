package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

const userIDKey contextKey = "user_id"

// Auth authenticates the caller with a shared bearer key and resolves the
// acting user from the X-User-ID header. The CRUD layer in front of this
// service owns real end-user authentication.
func Auth(serviceKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if serviceKey == "" || token != serviceKey {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, map[string]string{
					"code":    ErrorCodeUnauthorized,
					"message": ErrorMessageUnauthorized,
				})
				return
			}

			userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
			if userID == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, map[string]string{
					"code":    ErrorCodeMissingUser,
					"message": ErrorMessageMissingUser,
				})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user from the request context.
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
