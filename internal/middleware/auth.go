package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-lost-and-found/internal/apperror"
	"pet-lost-and-found/internal/auth"
	"pet-lost-and-found/internal/respond"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// RequireAuth corta el pipeline con 401 si no llega una credencial válida.
// Solo establece identidad; la autorización (ownership) no es trabajo suyo.
func RequireAuth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				respond.Error(w, nil, apperror.NewAuth("Access denied"))
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				// Genérico a propósito: no decimos qué chequeo falló.
				respond.Error(w, nil, apperror.NewAuth("Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID devuelve la identidad que dejó RequireAuth en el contexto.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 1 {
		// Sin esquema: se acepta el valor pelado.
		return strings.TrimSpace(parts[0])
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
