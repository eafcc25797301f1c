package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailguard/internal/app"
)

// rootState is shared by the subcommands of one root command.
type rootState struct {
	home        string
	service     string
	logLevel    string
	development bool
	legacy      bool

	wireOpts []app.WireOption
	app      *app.App
}

// Execute runs the CLI against the process arguments and prints any error.
func Execute() error {
	root, st := newRootCmd()
	defer st.close()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCmd builds the command tree. opts replace platform dependencies.
func NewRootCmd(opts ...app.WireOption) *cobra.Command {
	root, _ := newRootCmd(opts...)
	return root
}

func newRootCmd(opts ...app.WireOption) (*cobra.Command, *rootState) {
	st := &rootState{wireOpts: opts}

	root := &cobra.Command{
		Use:           "mailguard",
		Short:         "Keep a mail password in the OS keyring behind device- and user-bound encryption",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.open(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.home, "home", "", "state dir (default $XDG_CONFIG_HOME/mailguard)")
	pf.StringVar(&st.service, "service", "", "keyring service name")
	pf.StringVar(&st.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&st.development, "dev", false, "human-readable logs")
	pf.BoolVar(&st.legacy, "legacy-fallback", false, "keep a legacy password copy and read it when the keyring copy fails")

	root.AddCommand(
		loginCmd(st),
		saveCmd(st),
		showCmd(st),
		forgetCmd(st),
		logoutCmd(st),
		statusCmd(st),
	)
	return root, st
}

// open resolves the configuration and wires the app.
func (st *rootState) open(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(st.home, nil)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("service") {
		cfg.Service = st.service
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = st.logLevel
	}
	if flags.Changed("dev") {
		cfg.Development = st.development
	}
	if flags.Changed("legacy-fallback") {
		cfg.LegacyFallback = st.legacy
	}

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	a, err := app.New(cfg, st.wireOpts...)
	if err != nil {
		return err
	}
	st.app = a
	return nil
}

func (st *rootState) close() {
	if st.app != nil {
		st.app.Close()
	}
}
