package types

// UserID is the mail account address. It is both the secret-store account
// key and a key-derivation input.
type UserID string

// String returns the string form of the user identity.
func (u UserID) String() string { return string(u) }

// Bytes returns the raw bytes used as key-derivation input.
func (u UserID) Bytes() []byte { return []byte(u) }

// Empty reports whether the identity is unset.
func (u UserID) Empty() bool { return u == "" }

// DeviceID is the opaque per-machine identifier. It is only ever consumed as
// key-derivation input and never persisted.
type DeviceID string

// String returns the string form of the device identity.
func (d DeviceID) String() string { return string(d) }
