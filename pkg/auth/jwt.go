package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

const issuer = "poolkeeper"

type JWTServiceInterface interface {
	GenerateJWT(address string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	secretMu  sync.RWMutex
	secretKey = []byte("your-secret-key")
)

// SetSecretKey replaces the HS256 signing key. Empty keys are ignored.
func SetSecretKey(key string) {
	if key == "" {
		return
	}
	secretMu.Lock()
	secretKey = []byte(key)
	secretMu.Unlock()
}

func secret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secretKey
}

type Claims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(address string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Address: address,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
			Subject:   address,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Address == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
