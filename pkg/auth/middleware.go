package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/obrf/congresspay/pkg/utils"
)

type ContextKey string

const RoleKey ContextKey = "role"

const AdminRole = "admin"

// AdminMiddleware gates the review dashboard endpoints behind a bearer token
// carrying the admin role.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil || claims.Role != AdminRole {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
