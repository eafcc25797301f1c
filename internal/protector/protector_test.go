package protector_test

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailguard/internal/crypto"
	"mailguard/internal/device"
	"mailguard/internal/domain"
	"mailguard/internal/keystore"
	"mailguard/internal/layers"
	"mailguard/internal/protector"
)

const account domain.UserID = "a@2925.com"

type countingSource struct {
	id    string
	calls atomic.Int32
}

func (s *countingSource) DeviceID() (domain.DeviceID, error) {
	s.calls.Add(1)
	return domain.DeviceID(s.id), nil
}

type fixture struct {
	backend *keystore.MemoryBackend
	store   *keystore.Store
	source  *countingSource
	p       *protector.Protector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := keystore.NewMemoryBackend()
	store := keystore.New(backend, "", nil)
	src := &countingSource{id: "9f2c1e7a-machine"}
	return &fixture{
		backend: backend,
		store:   store,
		source:  src,
		p:       protector.New(layers.NewDeviceBound(src), layers.NewUserBound(), store),
	}
}

func (f *fixture) raw(t *testing.T) []byte {
	t.Helper()
	enc, err := f.backend.Get(keystore.ServiceName, account.String())
	require.NoError(t, err)
	blob, err := crypto.FromB64(enc)
	require.NoError(t, err)
	return blob
}

func (f *fixture) setRaw(t *testing.T, blob []byte) {
	t.Helper()
	require.NoError(t, f.backend.Set(keystore.ServiceName, account.String(), crypto.B64(blob)))
}

// Scenario A.
func TestProtectReveal_RoundTrip(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.p.Protect("Secret123!", account))
	got, err := f.p.Reveal(account)
	require.NoError(t, err)
	assert.Equal(t, "Secret123!", got)
}

func TestProtectReveal_Passwords(t *testing.T) {
	f := newFixture(t)
	for _, pw := range []string{"x", "pässwörd-密码", strings.Repeat("long", 64), "with\x00nul"} {
		require.NoError(t, f.p.Protect(pw, account))
		got, err := f.p.Reveal(account)
		require.NoError(t, err)
		assert.Equal(t, pw, got)
	}
}

func TestProtect_FreshBlobEachTime(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.p.Protect("Secret123!", account))
	first := f.raw(t)
	require.NoError(t, f.p.Protect("Secret123!", account))
	second := f.raw(t)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first[:layers.SaltSize], second[:layers.SaltSize])

	got, err := f.p.Reveal(account)
	require.NoError(t, err)
	assert.Equal(t, "Secret123!", got)

	f.setRaw(t, first)
	got, err = f.p.Reveal(account)
	require.NoError(t, err)
	assert.Equal(t, "Secret123!", got)
}

func TestProtect_BlobSize(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Secret123!", account))

	// Two nested layers: 2 * (header + tag) + plaintext.
	want := 2*(layers.HeaderSize+crypto.TagSize) + len("Secret123!")
	assert.Len(t, f.raw(t), want)
}

// Scenario B.
func TestReveal_TamperedByte50(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Secret123!", account))

	blob := f.raw(t)
	blob[50] ^= 0xff
	f.setRaw(t, blob)

	_, err := f.p.Reveal(account)
	assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
}

func TestReveal_LayerTwoCorruptionStopsAtLayerTwo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Secret123!", account))
	pristine := f.raw(t)

	regions := map[string]int{
		"salt":       0,
		"nonce":      layers.SaltSize + 3,
		"ciphertext": layers.HeaderSize + 5,
		"tag":        len(pristine) - 1,
	}
	for name, idx := range regions {
		t.Run(name, func(t *testing.T) {
			blob := append([]byte(nil), pristine...)
			blob[idx] ^= 0x01
			f.setRaw(t, blob)

			before := f.source.calls.Load()
			_, err := f.p.Reveal(account)
			assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
			assert.Equal(t, before, f.source.calls.Load(), "device-bound layer must not run")
		})
	}
}

// Scenario C.
func TestReveal_ShortBlobIsInvalidData(t *testing.T) {
	f := newFixture(t)
	f.setRaw(t, make([]byte, 10))

	_, err := f.p.Reveal(account)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.ErrorIs(t, err, layers.ErrShortBlob)
	assert.Zero(t, f.source.calls.Load())
}

func TestReveal_BadBase64IsInvalidData(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.backend.Set(keystore.ServiceName, account.String(), "***"))

	_, err := f.p.Reveal(account)
	assert.Equal(t, domain.KindInvalidData, domain.KindOf(err))
}

// Scenario D.
func TestForget_ThenRevealIsKeyringError(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Secret123!", account))

	require.NoError(t, f.p.Forget(account))
	_, err := f.p.Reveal(account)
	assert.ErrorIs(t, err, domain.ErrKeyringError)

	assert.ErrorIs(t, f.p.Forget(account), domain.ErrKeyringError, "second forget has no entry")
}

// Scenario E.
func TestProtect_DeviceFailureLeavesStoreUntouched(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Old-Password1", account))
	before := f.raw(t)

	broken := device.Func(func() (string, error) { return "", errors.New("unsupported platform") })
	p := protector.New(layers.NewDeviceBound(broken), layers.NewUserBound(), f.store)

	err := p.Protect("New-Password2", account)
	assert.ErrorIs(t, err, domain.ErrEncryptionFailed)
	assert.Equal(t, before, f.raw(t))

	got, err := f.p.Reveal(account)
	require.NoError(t, err)
	assert.Equal(t, "Old-Password1", got)
}

func TestReveal_OtherDeviceFails(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.p.Protect("Secret123!", account))

	elsewhere := protector.New(layers.NewDeviceBound(device.Static("other-machine")), layers.NewUserBound(), f.store)
	_, err := elsewhere.Reveal(account)
	assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
}

func TestReveal_NonUTF8IsInvalidData(t *testing.T) {
	f := newFixture(t)

	l1 := layers.NewDeviceBound(f.source)
	l2 := layers.NewUserBound()
	inner, err := l1.Encrypt([]byte{0xff, 0xfe, 0xfd}, account)
	require.NoError(t, err)
	outer, err := l2.Encrypt(inner, account)
	require.NoError(t, err)
	require.NoError(t, f.store.Put(account, outer))

	_, err = f.p.Reveal(account)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.ErrorIs(t, err, protector.ErrNotUTF8)
}

func TestEmptyUserIsInvalidData(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.p.Protect("pw", ""), domain.ErrInvalidData)
	_, err := f.p.Reveal("")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	assert.ErrorIs(t, f.p.Forget(""), domain.ErrInvalidData)
	assert.Zero(t, f.backend.Len())
}
