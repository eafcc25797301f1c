// Package crypto exposes the minimal primitives used by mailguard.
//
// Contents
//
//   - PBKDF2-HMAC-SHA-256 key derivation (DeriveKey)
//   - AES-256-GCM sealing and opening with caller-supplied nonces (Seal, Open)
//   - Random salt and nonce generation from an injected reader (RandomBytes)
//   - Standard base64 helpers for the secret-store encoding (B64, FromB64)
//   - Short fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Open reports every authentication failure with the same error regardless of
// cause, so callers cannot tell a wrong key from corrupted data. Callers should
// zero derived keys (util/memzero) as soon as the single cipher call that
// needs them returns.
package crypto
