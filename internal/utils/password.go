package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the platform has always hashed with. Changing
// it only affects newly stored hashes; verification reads the cost from the
// hash itself.
const bcryptCost = 10

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
