package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"uwazi/internal/auth"
	"uwazi/internal/models"
)

const userKey ctxKey = "user"

// RequireUser — guard для защищённых маршрутов:
// Authorization: Bearer <token> → Authenticate → user в контексте запроса.
// Причины отказа схлопнуты: наружу уходит только generic 401.
func RequireUser(a *auth.Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const p = "Bearer "
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, p) {
				unauthorized(w, auth.ErrInvalidToken.Error())
				return
			}
			u, err := a.Authenticate(r.Context(), strings.TrimPrefix(header, p))
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrUserNotFound):
					unauthorized(w, err.Error())
				default:
					models.WriteProblem(w, http.StatusInternalServerError,
						"Internal Server Error", "authentication backend failure", nil)
				}
				return
			}
			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom достаёт аутентифицированного пользователя из контекста запроса.
func UserFrom(r *http.Request) *models.User {
	if u, ok := r.Context().Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", detail, nil)
}
