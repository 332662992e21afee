package auth

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the SHA-1 hex digest of a password. SHA-1 is the
// stored-credential format this service inherited; changing it would
// invalidate every existing account.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks a password against a stored hash in constant time.
func VerifyPassword(password, hash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
