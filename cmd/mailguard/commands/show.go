package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved password of the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			err := withSpinner(cmd, "Unlocking password", func() error {
				var err error
				password, err = st.app.Credentials.LoadPassword()
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
}
