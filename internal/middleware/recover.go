package middleware

import (
	"net/http"

	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/respond"
)

// Recover convierte panics en un 500 con el sobre de respuesta estándar,
// en lugar del texto plano de chi/middleware.Recoverer.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error("panic", map[string]any{
						"panic": rvr,
						"path":  r.URL.Path,
					})
					respond.Message(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
