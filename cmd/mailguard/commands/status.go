package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"mailguard/internal/crypto"
	"mailguard/internal/ui"
)

func statusCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show device, keyring and session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := st.app
			out := cmd.OutOrStdout()

			if id, err := a.Device.DeviceID(); err != nil {
				row(out, "device", ui.Error.Sprint("unavailable"), err.Error())
			} else {
				row(out, "device", ui.Success.Sprint("ok"), "fingerprint "+crypto.Fingerprint([]byte(id)))
			}

			if err := a.Secrets.Available(); err != nil {
				row(out, "keyring", ui.Error.Sprint("unavailable"), err.Error())
			} else {
				row(out, "keyring", ui.Success.Sprint("ok"), "service "+ui.Highlight.Sprint(a.Secrets.Service()))
			}

			session, ok, err := a.Credentials.CurrentSession()
			switch {
			case err != nil:
				row(out, "session", ui.Error.Sprint("unreadable"), err.Error())
			case !ok:
				row(out, "session", ui.Muted.Sprint("signed out"), "")
			case session.Expired(time.Now()):
				row(out, "session", ui.Warning.Sprint("expired"), ui.Highlight.Sprint(session.Email))
			default:
				row(out, "session", ui.Success.Sprint("active"),
					fmt.Sprintf("%s until %s", ui.Highlight.Sprint(session.Email),
						session.ExpiresAtTime().Format(time.RFC3339)))
			}

			row(out, "layers", fmt.Sprintf("%s %d, %s %d", a.DeviceBound.Name(), a.DeviceBound.Iterations(),
				a.UserBound.Name(), a.UserBound.Iterations()), "PBKDF2-SHA256 / AES-256-GCM")
			legacy := "off"
			if a.Legacy != nil {
				legacy = "on"
			}
			row(out, "legacy", legacy, "")
			row(out, "home", ui.Path.Sprint(a.Config.Home), "")
			return nil
		},
	}
}

func row(w io.Writer, name, value, detail string) {
	if detail == "" {
		fmt.Fprintf(w, "%-8s %s\n", name, value)
		return
	}
	fmt.Fprintf(w, "%-8s %s %s\n", name, value, ui.Muted.Sprint(detail))
}
