package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailguard/internal/ui"
)

func logoutCmd(st *rootState) *cobra.Command {
	var forget bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.app.Credentials.Logout(forget); err != nil {
				return err
			}
			msg := "Signed out"
			if forget {
				msg += " and forgot the saved password"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Success.Sprint("✓"), msg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&forget, "forget", false, "also delete the saved password")
	return cmd
}
