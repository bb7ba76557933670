package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

// HashService wraps bcrypt for the admin passphrase. HashPassword is the
// provisioning side (cmd/hashgen emits the value for ADMIN_PASSWORD_HASH),
// ComparePassword is the login side.
type HashService struct{}

func (s *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
