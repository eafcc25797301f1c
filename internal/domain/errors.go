package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a credential failure. The kinds are mutually exclusive.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in the
	// credential pipeline.
	KindUnknown Kind = iota
	// KindEncryptionFailed covers cipher/KDF setup and device-identity
	// acquisition failures. Nothing was written.
	KindEncryptionFailed
	// KindDecryptionFailed means authentication of a ciphertext failed: wrong
	// key or tampered data. The two causes are never distinguished.
	KindDecryptionFailed
	// KindKeyring means the platform secret store rejected the operation or
	// held no entry.
	KindKeyring
	// KindInvalidData means the payload is structurally malformed.
	KindInvalidData
)

var (
	// ErrEncryptionFailed matches every error of KindEncryptionFailed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed matches every error of KindDecryptionFailed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrKeyringError matches every error of KindKeyring.
	ErrKeyringError = errors.New("keyring error")

	// ErrInvalidData matches every error of KindInvalidData.
	ErrInvalidData = errors.New("invalid data")
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEncryptionFailed:
		return "EncryptionFailed"
	case KindDecryptionFailed:
		return "DecryptionFailed"
	case KindKeyring:
		return "KeyringError"
	case KindInvalidData:
		return "InvalidData"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindEncryptionFailed:
		return ErrEncryptionFailed
	case KindDecryptionFailed:
		return ErrDecryptionFailed
	case KindKeyring:
		return ErrKeyringError
	case KindInvalidData:
		return ErrInvalidData
	default:
		return nil
	}
}

// Retryable reports whether retrying with the same inputs can succeed once
// the underlying platform condition is fixed.
func (k Kind) Retryable() bool {
	return k == KindEncryptionFailed || k == KindKeyring
}

// CredentialError is returned by every stage of the credential pipeline.
//
// Err never carries plaintext, key bytes or the key-derivation secret.
type CredentialError struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError returns a CredentialError of kind k for operation op.
func NewError(k Kind, op string, err error) *CredentialError {
	return &CredentialError{Kind: k, Op: op, Err: err}
}

func (e *CredentialError) Error() string {
	msg := "credential error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Err == nil {
		return e.Op + ": " + msg
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, msg, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CredentialError) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *CredentialError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first CredentialError in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var ce *CredentialError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// AsKind returns err unchanged when it already carries a kind, and otherwise
// wraps it as kind k for operation op.
func AsKind(k Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}
	return NewError(k, op, err)
}
