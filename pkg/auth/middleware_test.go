package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	valid, err := jwtService.GenerateJWT("S1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name            string
		header          string
		expectedStatus  int
		expectedAddress string
	}{
		{name: "No header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expectedStatus: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expectedStatus: http.StatusOK, expectedAddress: "S1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAddress string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAddress, _ = AddressFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			AuthMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAddress, gotAddress)
		})
	}
}
