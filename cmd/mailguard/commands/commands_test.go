// cmd/mailguard/commands/commands_test.go

package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailguard/internal/app"
	"mailguard/internal/device"
	"mailguard/internal/domain"
	"mailguard/internal/keystore"
	"mailguard/internal/services/credential"
)

type cli struct {
	t       *testing.T
	home    string
	backend *keystore.MemoryBackend
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return &cli{t: t, home: t.TempDir(), backend: keystore.NewMemoryBackend()}
}

// run executes one command with a fresh root, as separate processes would.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	root, st := newRootCmd(app.WithDevice(device.Static("test-machine")), app.WithBackend(c.backend))
	defer st.close()

	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--home", c.home, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLoginShowLogout(t *testing.T) {
	if testing.Short() {
		t.Skip("runs production key derivation")
	}
	c := newCLI(t)

	out, err := c.run("Secret123!\n", "login", "a@2925.com", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as 'a@2925.com'")
	assert.Equal(t, 1, c.backend.Len())

	out, err = c.run("", "show")
	require.NoError(t, err)
	assert.Equal(t, "Secret123!\n", out)

	out, err = c.run("", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "active")

	_, err = c.run("", "logout", "--forget")
	require.NoError(t, err)
	assert.Equal(t, 0, c.backend.Len())

	_, err = c.run("", "show")
	require.ErrorIs(t, err, credential.ErrNoSession)
}

func TestSave_ReplacesPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("runs production key derivation")
	}
	c := newCLI(t)

	_, err := c.run("Secret123!\n", "login", "a@2925.com", "--password-stdin")
	require.NoError(t, err)
	_, err = c.run("Changed456?\n", "save", "--password-stdin")
	require.NoError(t, err)

	out, err := c.run("", "show")
	require.NoError(t, err)
	assert.Equal(t, "Changed456?\n", out)
}

func TestLogin_RequiresTerminalOrFlag(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("Secret123!\n", "login", "a@2925.com")
	require.ErrorIs(t, err, errNotTerminal)
	assert.Equal(t, 0, c.backend.Len())
}

func TestLogin_RejectsForeignDomain(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("Secret123!\n", "login", "a@example.org", "--password-stdin")
	require.ErrorIs(t, err, credential.ErrInvalidEmail)
}

func TestForget_WithoutSession(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("", "forget")
	require.ErrorIs(t, err, credential.ErrNoSession)

	_, err = c.run("", "forget", "a@2925.com")
	require.ErrorIs(t, err, domain.ErrKeyringError)
	assert.Equal(t, exitKeyring, ExitCode(err))
}

func TestStatus_SignedOut(t *testing.T) {
	c := newCLI(t)
	out, err := c.run("", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "signed out")
	assert.Contains(t, out, "device-bound 100000")
	assert.Contains(t, out, "user-bound 200000")
	assert.Contains(t, out, "service 'email-manager-2925'")
	assert.NotContains(t, out, "test-machine", "raw device id must not be printed")
}

func TestStatus_ServiceFlagBeatsEnv(t *testing.T) {
	c := newCLI(t)
	t.Setenv(app.EnvService, "from-env")

	out, err := c.run("", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "service 'from-env'")

	out, err = c.run("", "--service", "from-flag", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "service 'from-flag'")
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("plain"), exitGeneric},
		{credential.ErrNoSession, exitGeneric},
		{domain.NewError(domain.KindEncryptionFailed, "op", nil), exitEncryption},
		{domain.NewError(domain.KindDecryptionFailed, "op", nil), exitDecryption},
		{domain.NewError(domain.KindKeyring, "op", nil), exitKeyring},
		{domain.NewError(domain.KindInvalidData, "op", nil), exitInvalid},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExitCode(c.err), "%v", c.err)
	}
}

func TestPrintError_Hints(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	printError(&buf, domain.NewError(domain.KindDecryptionFailed, "user-bound decrypt", nil))
	assert.Contains(t, buf.String(), "✗ user-bound decrypt: decryption failed")
	assert.Contains(t, buf.String(), "`mailguard save`")

	buf.Reset()
	printError(&buf, credential.ErrSessionExpired)
	assert.Contains(t, buf.String(), "`mailguard login <email>`")

	buf.Reset()
	printError(&buf, credential.ErrWeakPassword)
	assert.NotContains(t, buf.String(), "→")
}
