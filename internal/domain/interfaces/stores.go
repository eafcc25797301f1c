package interfaces

import domaintypes "mailguard/internal/domain/types"

// SecretStore persists one opaque blob per user identity in the platform
// secret store.
type SecretStore interface {
	Put(user domaintypes.UserID, blob []byte) error
	Get(user domaintypes.UserID) ([]byte, error)
	Delete(user domaintypes.UserID) error
}

// SessionStore persists the signed-in session on disk.
type SessionStore interface {
	SaveSession(session domaintypes.Session) error
	LoadSession() (domaintypes.Session, bool, error)
	ClearSession() error
}

// LegacyStore is the compatibility password store consulted when the
// protected credential cannot be read. It carries no security guarantee.
type LegacyStore interface {
	SaveLegacyPassword(user domaintypes.UserID, password string) error
	LoadLegacyPassword(user domaintypes.UserID) (string, bool, error)
	DeleteLegacyPassword(user domaintypes.UserID) error
}
