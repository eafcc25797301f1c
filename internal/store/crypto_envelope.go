package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"mailguard/internal/crypto"
	"mailguard/internal/util/memzero"
)

const (
	// The current supported version of the envelope format stored on disk.
	envelopeFormatVersion = 1

	envelopeSaltSize = 16
)

var (
	// Returned when the envelope key is wrong or the ciphertext was modified.
	errEnvelopeOpen = errors.New("legacy envelope authentication failed")
)

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from secret and seals raw, binding ad as associated data.
func seal(secret, ad, raw []byte, N, r, p int) (envelope, error) {
	salt, err := crypto.RandomBytes(nil, envelopeSaltSize)
	if err != nil {
		return envelope{}, err
	}
	key, err := scrypt.Key(secret, salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return envelope{}, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return envelope{}, err
	}
	nonce, err := crypto.RandomBytes(nil, aead.NonceSize())
	if err != nil {
		return envelope{}, err
	}
	return envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		N:      N,
		R:      r,
		P:      p,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, ad),
	}, nil
}

// open re-derives the key recorded in env and opens it.
func open(secret, ad []byte, env envelope) ([]byte, error) {
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}
	key, err := scrypt.Key(secret, env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, errEnvelopeOpen
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, ad)
	if err != nil {
		return nil, errEnvelopeOpen
	}
	return pt, nil
}
