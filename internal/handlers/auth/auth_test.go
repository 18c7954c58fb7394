package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	account := &domain.Account{ID: 1, Address: "S0", PasswordHash: "hashedpassword"}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedHeader string
	}{
		{
			name: "Successful registration",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "S0", "password123").Return(account, nil)
				service.EXPECT().GenerateToken("S0").Return("some-jwt-token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer some-jwt-token",
		},
		{
			name: "Address already registered",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "S0", "password123").
					Return(nil, fmt.Errorf("%w: S0", domain.ErrAccountExists))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "account already exists: S0",
		},
		{
			name: "Invalid address",
			body: `{"address":"bad address","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "bad address", "password123").
					Return(nil, domain.ErrInvalidAddress)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "S0", "password123").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "S0", "password123").Return(account, nil)
				service.EXPECT().
					GenerateToken("S0").
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/accounts/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedHeader, rr.Header().Get("Authorization"))

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	account := &domain.Account{ID: 1, Address: "S0", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "S0", "password123").
					Return(account, nil)

				service.EXPECT().
					GenerateToken("S0").
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"address":"S0","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "S0", "wrongpassword").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"address":"S0","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "S0", "password123").
					Return(account, nil)

				service.EXPECT().
					GenerateToken("S0").
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/accounts/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
