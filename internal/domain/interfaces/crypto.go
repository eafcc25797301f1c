package interfaces

import domaintypes "mailguard/internal/domain/types"

// DeviceIdentitySource supplies the stable per-device identifier.
type DeviceIdentitySource interface {
	DeviceID() (domaintypes.DeviceID, error)
}

// ProtectionLayer wraps and unwraps opaque bytes for one user identity.
//
// Encrypt returns salt || nonce || ciphertext_with_tag; Decrypt reverses it.
type ProtectionLayer interface {
	Encrypt(plaintext []byte, user domaintypes.UserID) ([]byte, error)
	Decrypt(blob []byte, user domaintypes.UserID) ([]byte, error)
}
