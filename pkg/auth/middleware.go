package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/poolkeeper/pkg/utils"
)

type ContextKey string

const AddressKey ContextKey = "address"

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AddressKey, claims.Address)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AddressFromContext returns the requester address set by AuthMiddleware.
func AddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(AddressKey).(string)
	return address, ok && address != ""
}
