package interfaces

import domaintypes "mailguard/internal/domain/types"

// CredentialProtector runs the layered protection pipeline for a password.
type CredentialProtector interface {
	Protect(password string, user domaintypes.UserID) error
	Reveal(user domaintypes.UserID) (string, error)
	Forget(user domaintypes.UserID) error
}

// CredentialService manages the signed-in account and its saved password.
type CredentialService interface {
	Login(email domaintypes.UserID, password string) (domaintypes.Session, error)
	Logout(forget bool) error
	CurrentSession() (domaintypes.Session, bool, error)
	SavePassword(password string) error
	LoadPassword() (string, error)
	Forget(email domaintypes.UserID) error
}
