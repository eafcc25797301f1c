package layers

import (
	"io"

	"mailguard/internal/crypto"
	"mailguard/internal/domain"
	"mailguard/internal/util/memzero"
)

const (
	// SaltSize is the per-encryption PBKDF2 salt length.
	SaltSize = 32
	// NonceSize is the per-encryption AES-GCM nonce length.
	NonceSize = crypto.NonceSize
	// HeaderSize is the salt plus nonce prefix of every blob.
	HeaderSize = SaltSize + NonceSize

	// DeviceBoundIterations is the PBKDF2 cost of the device-bound layer.
	DeviceBoundIterations = 100_000
	// UserBoundIterations is the PBKDF2 cost of the user-bound layer.
	UserBoundIterations = 2 * DeviceBoundIterations
)

// secretFunc returns the key-derivation secret for user.
type secretFunc func(user domain.UserID) ([]byte, error)

// Layer is one salt || nonce || ciphertext protection layer. It holds no
// secret material between calls.
type Layer struct {
	name       string
	iterations int
	secret     secretFunc
	rand       io.Reader
}

// Option configures a Layer.
type Option func(*Layer)

// WithRand sets the source of salts and nonces. It must be
// cryptographically secure and safe for concurrent use.
func WithRand(r io.Reader) Option {
	return func(l *Layer) { l.rand = r }
}

func newLayer(name string, iterations int, secret secretFunc, opts ...Option) *Layer {
	l := &Layer{
		name:       name,
		iterations: iterations,
		secret:     secret,
		rand:       crypto.Reader,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Name identifies the layer in errors and logs.
func (l *Layer) Name() string { return l.name }

// Iterations returns the PBKDF2 iteration count.
func (l *Layer) Iterations() int { return l.iterations }

// Encrypt seals plaintext under a fresh salt and nonce.
func (l *Layer) Encrypt(plaintext []byte, user domain.UserID) ([]byte, error) {
	op := l.name + " encrypt"

	secret, err := l.secret(user)
	if err != nil {
		return nil, domain.AsKind(domain.KindEncryptionFailed, op, err)
	}
	defer memzero.Zero(secret)

	salt, err := crypto.RandomBytes(l.rand, SaltSize)
	if err != nil {
		return nil, domain.NewError(domain.KindEncryptionFailed, op, err)
	}
	nonce, err := crypto.RandomBytes(l.rand, NonceSize)
	if err != nil {
		return nil, domain.NewError(domain.KindEncryptionFailed, op, err)
	}

	key := crypto.DeriveKey(secret, salt, l.iterations)
	defer memzero.Zero(key)

	ct, err := crypto.Seal(key, nonce, plaintext)
	if err != nil {
		return nil, domain.NewError(domain.KindEncryptionFailed, op, err)
	}

	blob := make([]byte, 0, HeaderSize+len(ct))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return append(blob, ct...), nil
}

// Decrypt opens a blob produced by Encrypt for the same user. Blobs shorter
// than HeaderSize are rejected before any key is derived.
func (l *Layer) Decrypt(blob []byte, user domain.UserID) ([]byte, error) {
	op := l.name + " decrypt"

	if len(blob) < HeaderSize {
		return nil, domain.NewError(domain.KindInvalidData, op, ErrShortBlob)
	}
	salt := blob[:SaltSize]
	nonce := blob[SaltSize:HeaderSize]
	ct := blob[HeaderSize:]

	secret, err := l.secret(user)
	if err != nil {
		return nil, domain.AsKind(domain.KindEncryptionFailed, op, err)
	}
	defer memzero.Zero(secret)

	key := crypto.DeriveKey(secret, salt, l.iterations)
	defer memzero.Zero(key)

	pt, err := crypto.Open(key, nonce, ct)
	if err != nil {
		return nil, domain.NewError(domain.KindDecryptionFailed, op, err)
	}
	return pt, nil
}

// Compile-time assertion that Layer implements domain.ProtectionLayer.
var _ domain.ProtectionLayer = (*Layer)(nil)
