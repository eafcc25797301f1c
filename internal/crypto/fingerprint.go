package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of b, suitable for display
// where the raw value must not be shown.
//
// It hashes with SHA-256 and truncates to 8 bytes (16 hex chars).
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}
