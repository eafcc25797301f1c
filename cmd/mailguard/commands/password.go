package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"mailguard/internal/ui"
)

var errNotTerminal = errors.New("stdin is not a terminal; pass --password-stdin to read the password from it")

// readPassword prompts on a terminal, or reads one line from stdin when
// fromStdin is set.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	in := cmd.InOrStdin()
	if !fromStdin && !ui.IsTerminal(in) {
		return "", errNotTerminal
	}
	return ui.ReadPassword("Mail password: ", in, cmd.ErrOrStderr())
}

// withSpinner runs fn while a spinner covers the key derivation.
func withSpinner(cmd *cobra.Command, msg string, fn func() error) error {
	stop := ui.StartSpinner(msg, cmd.ErrOrStderr())
	err := fn()
	stop()
	return err
}
