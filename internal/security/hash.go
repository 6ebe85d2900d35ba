// Package security owns the one-way credential hashing boundary. A secret
// crossing this boundary becomes a salted digest; nothing in the repository
// stores or compares plaintext past this point.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret produces a salted bcrypt digest of secret. The salt is random
// per call, so hashing the same secret twice yields different digests.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(digest), nil
}

// VerifySecret reports whether digest was produced from secret. bcrypt
// re-derives the digest from the salt embedded in it and compares in constant
// time. A malformed digest verifies false; it never surfaces as an error.
func VerifySecret(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
