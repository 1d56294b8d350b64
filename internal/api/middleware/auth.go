package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/primebarbervip/PrimeBarberClub/internal/api/handlers"
	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth requires the X-User-ID header set by the API gateway and stores
// the caller identity in the request context. X-User-Role is optional
// and defaults to client.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get("X-User-ID")
		if rawID == "" {
			handlers.RespondUnauthorized(w, "se requiere autenticación")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "identificador de usuario inválido")
			return
		}

		role := domain.Role(r.Header.Get("X-User-Role"))
		if !role.Valid() {
			role = domain.RoleClient
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user ID from the context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserRole returns the caller role from the context.
func UserRole(ctx context.Context) domain.Role {
	if role, ok := ctx.Value(userRoleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleClient
}
