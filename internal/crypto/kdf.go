package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// KeySize is the length of every derived key (AES-256).
const KeySize = 32

// DeriveKey derives a KeySize key from secret and salt with
// PBKDF2-HMAC-SHA-256. Identical inputs always yield the identical key.
func DeriveKey(secret, salt []byte, iterations int) []byte {
	return pbkdf2.Key(secret, salt, iterations, KeySize, sha256.New)
}
