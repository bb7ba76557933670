package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("congresspay-dev-secret")

// SetSecret replaces the signing key; called once from app startup with the
// configured secret.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "congresspay",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role == "" || claims.Issuer != "congresspay" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
