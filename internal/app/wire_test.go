// internal/app/wire_test.go

package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailguard/internal/app"
	"mailguard/internal/device"
	"mailguard/internal/domain"
	"mailguard/internal/keystore"
	"mailguard/internal/layers"
)

func newTestApp(t *testing.T, legacy bool) (*app.App, *keystore.MemoryBackend) {
	t.Helper()
	cfg := app.DefaultConfig(t.TempDir())
	cfg.LogLevel = "error"
	cfg.LegacyFallback = legacy

	backend := keystore.NewMemoryBackend()
	a, err := app.New(cfg, app.WithDevice(device.Static("test-machine")), app.WithBackend(backend))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, backend
}

func TestNewWire_ProductionContract(t *testing.T) {
	a, _ := newTestApp(t, false)
	assert.Equal(t, layers.DeviceBoundIterations, a.DeviceBound.Iterations())
	assert.Equal(t, layers.UserBoundIterations, a.UserBound.Iterations())
	assert.Equal(t, keystore.ServiceName, a.Secrets.Service())
	assert.Nil(t, a.Legacy)
}

func TestNewWire_LegacyEnabled(t *testing.T) {
	a, _ := newTestApp(t, true)
	assert.NotNil(t, a.Legacy)
}

func TestNewWire_InvalidConfig(t *testing.T) {
	_, err := app.NewWire(app.Config{}, nil)
	require.Error(t, err)
}

func TestNew_BadLogLevel(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.LogLevel = "loud"
	_, err := app.New(cfg)
	require.Error(t, err)
}

func TestWire_LoginShowForget(t *testing.T) {
	if testing.Short() {
		t.Skip("runs production key derivation")
	}
	a, backend := newTestApp(t, false)
	const email = domain.UserID("a@2925.com")

	_, err := a.Credentials.Login(email, "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.Len())

	got, err := a.Credentials.LoadPassword()
	require.NoError(t, err)
	assert.Equal(t, "Secret123!", got)

	require.NoError(t, a.Credentials.Logout(true))
	assert.Equal(t, 0, backend.Len())
	_, err = a.Protector.Reveal(email)
	require.ErrorIs(t, err, domain.ErrKeyringError)
}
