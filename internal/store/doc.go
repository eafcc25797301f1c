// Package store provides file-based persistence for mailguard's local state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk with atomic temp-file writes. All methods
// are concurrency-safe via internal locking. Files live under the configured
// home directory.
//
// The package includes:
//   - The signed-in session (SessionFileStore)
//   - The legacy fallback password file (LegacyFileStore), sealed with a
//     scrypt + ChaCha20-Poly1305 envelope keyed by the account address. It is a
//     compatibility path and offers no protection beyond casual reading.
package store
