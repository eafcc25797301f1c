package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailguard/internal/ui"
)

func saveCmd(st *rootState) *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Replace the saved password of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}
			err = withSpinner(cmd, "Protecting password", func() error {
				return st.app.Credentials.SavePassword(password)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Password saved\n", ui.Success.Sprint("✓"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}
