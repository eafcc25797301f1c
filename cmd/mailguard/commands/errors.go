package commands

import (
	"errors"
	"fmt"
	"io"

	"mailguard/internal/domain"
	"mailguard/internal/services/credential"
	"mailguard/internal/ui"
)

// Exit codes, one per credential error kind.
const (
	exitGeneric    = 1
	exitEncryption = 2
	exitDecryption = 3
	exitKeyring    = 4
	exitInvalid    = 5
)

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch domain.KindOf(err) {
	case domain.KindEncryptionFailed:
		return exitEncryption
	case domain.KindDecryptionFailed:
		return exitDecryption
	case domain.KindKeyring:
		return exitKeyring
	case domain.KindInvalidData:
		return exitInvalid
	default:
		return exitGeneric
	}
}

// hint suggests what the user can do about err.
func hint(err error) string {
	switch {
	case errors.Is(err, credential.ErrNoSession), errors.Is(err, credential.ErrSessionExpired):
		return "Sign in with " + ui.Code.Sprint("mailguard login <email>")
	case errors.Is(err, credential.ErrInvalidEmail), errors.Is(err, credential.ErrWeakPassword):
		return ""
	}
	switch domain.KindOf(err) {
	case domain.KindEncryptionFailed:
		return "The device identifier or system randomness is unavailable; retry once the platform is healthy"
	case domain.KindDecryptionFailed, domain.KindInvalidData:
		return "Saved credentials are unreadable on this device; re-enter the password with " + ui.Code.Sprint("mailguard save")
	case domain.KindKeyring:
		return "Check that the system keyring is unlocked, then retry"
	}
	return ""
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", ui.Error.Sprint("✗"), err)
	if h := hint(err); h != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Info.Sprint("→"), h)
	}
}
