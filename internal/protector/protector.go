package protector

import (
	"errors"
	"unicode/utf8"

	"mailguard/internal/domain"
	"mailguard/internal/util/memzero"
)

// ErrNotUTF8 is the cause of InvalidData when the fully decrypted bytes are
// not a valid UTF-8 string.
var ErrNotUTF8 = errors.New("decrypted credential is not valid UTF-8")

// Protector is a fixed composition of two protection layers and a secret
// store.
type Protector struct {
	deviceBound domain.ProtectionLayer
	userBound   domain.ProtectionLayer
	store       domain.SecretStore
}

// New returns a Protector. deviceBound is applied first on Protect and
// removed last on Reveal.
func New(deviceBound, userBound domain.ProtectionLayer, store domain.SecretStore) *Protector {
	return &Protector{deviceBound: deviceBound, userBound: userBound, store: store}
}

// Protect encrypts password for user and stores it. The store is written
// only after both layers succeed.
func (p *Protector) Protect(password string, user domain.UserID) error {
	if user.Empty() {
		return domain.NewError(domain.KindInvalidData, "protect", errEmptyUser)
	}

	plaintext := []byte(password)
	defer memzero.Zero(plaintext)

	inner, err := p.deviceBound.Encrypt(plaintext, user)
	if err != nil {
		return err
	}
	outer, err := p.userBound.Encrypt(inner, user)
	if err != nil {
		return err
	}
	return p.store.Put(user, outer)
}

// Reveal loads and decrypts the password stored for user.
func (p *Protector) Reveal(user domain.UserID) (string, error) {
	if user.Empty() {
		return "", domain.NewError(domain.KindInvalidData, "reveal", errEmptyUser)
	}

	outer, err := p.store.Get(user)
	if err != nil {
		return "", err
	}
	inner, err := p.userBound.Decrypt(outer, user)
	if err != nil {
		return "", err
	}
	plaintext, err := p.deviceBound.Decrypt(inner, user)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(plaintext)

	if !utf8.Valid(plaintext) {
		return "", domain.NewError(domain.KindInvalidData, "reveal", ErrNotUTF8)
	}
	return string(plaintext), nil
}

// Forget removes the stored credential for user.
func (p *Protector) Forget(user domain.UserID) error {
	if user.Empty() {
		return domain.NewError(domain.KindInvalidData, "forget", errEmptyUser)
	}
	return p.store.Delete(user)
}

var errEmptyUser = errors.New("empty user identity")

// Compile-time assertion that Protector implements domain.CredentialProtector.
var _ domain.CredentialProtector = (*Protector)(nil)
