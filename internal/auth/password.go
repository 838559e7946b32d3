package auth

import (
	"golang.org/x/crypto/bcrypt"

	"luvo_backend/pkg/apperrors"
)

const minPasswordLength = 6

// HashPassword hashes the plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "failed to hash password", 500)
	}
	return string(hash), nil
}

// CheckPassword compares the plaintext password against the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}
	return nil
}
