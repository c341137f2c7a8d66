package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ComparePassword reports whether provided matches expected.
//
// When expected is a bcrypt hash, bcrypt does the comparison. Otherwise both
// values are reduced to HMAC-SHA256 digests under hashKey and the digests
// are compared with hmac.Equal, so the running time depends neither on the
// position of the first mismatch nor on the length of either input.
func ComparePassword(provided, expected, hashKey string) bool {
	if IsBcryptHash(expected) {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(provided)) == nil
	}

	return hmac.Equal(
		hashString([]byte(provided), hashKey),
		hashString([]byte(expected), hashKey),
	)
}

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes a raw HMAC-SHA256 digest over data.
// A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
