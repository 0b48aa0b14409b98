package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes a short-lived secret before it is stored server-side
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// SecretMatches reports whether secret produced hash. Malformed hashes never match.
func SecretMatches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
