package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way, salted bcrypt hash from a plaintext
// password. The plaintext never reaches the store; only this hash does.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored bcrypt
// hash. Returns nil on match.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
