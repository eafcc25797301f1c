package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailguard/internal/domain"
	"mailguard/internal/ui"
)

func loginCmd(st *rootState) *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and protect the mail password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			var session domain.Session
			err = withSpinner(cmd, "Protecting password", func() error {
				session, err = st.app.Credentials.Login(domain.UserID(args[0]), password)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Signed in as %s %s\n",
				ui.Success.Sprint("✓"),
				ui.Highlight.Sprint(session.Email),
				ui.Muted.Sprintf("until %s", session.ExpiresAtTime().Format("15:04 MST")))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}
