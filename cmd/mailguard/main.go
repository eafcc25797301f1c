package main

import (
	"os"

	"mailguard/cmd/mailguard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
