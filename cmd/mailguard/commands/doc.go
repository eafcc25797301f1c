// Package commands defines the mailguard CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login <email>  Sign in and protect the mail password
//   - save           Replace the saved password of the signed-in account
//   - show           Print the saved password
//   - forget [email] Delete the saved password from the keyring
//   - logout         Sign out, optionally forgetting the password
//   - status         Show device, keyring and session state
//
// # Implementation
//
// The root command resolves configuration (flag, then MAILGUARD_* environment,
// then config.json, then defaults) and builds the dependency graph before any
// subcommand runs, so handlers share one app context and logger.
package commands
