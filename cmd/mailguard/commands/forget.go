package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailguard/internal/domain"
	"mailguard/internal/services/credential"
	"mailguard/internal/ui"
)

func forgetCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "forget [email]",
		Short: "Delete the saved password (default: the signed-in account)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var email domain.UserID
			if len(args) == 1 {
				email = domain.UserID(args[0])
			} else {
				session, ok, err := st.app.Credentials.CurrentSession()
				if err != nil {
					return err
				}
				if !ok {
					return credential.ErrNoSession
				}
				email = session.Email
			}
			if err := st.app.Credentials.Forget(email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Forgot the password of %s\n",
				ui.Success.Sprint("✓"), ui.Highlight.Sprint(email))
			return nil
		},
	}
}
