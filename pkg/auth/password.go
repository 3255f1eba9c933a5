// Package auth provides authentication utilities including password hashing and JWT.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for stored passwords.
const hashCost = 12

// HashPassword generates a bcrypt hash from a plain text password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a plain text password with a hashed password.
// Returns nil if they match, error otherwise.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
