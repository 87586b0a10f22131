package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// HashPassword produces a salted bcrypt hash of the plaintext. The
// plaintext is never stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

// PasswordMatches delegates the comparison to bcrypt, which is safe
// against timing attacks.
func PasswordMatches(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
