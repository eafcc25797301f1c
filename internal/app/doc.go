// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, the config file and the environment,
// then builds the device source, protection layers, secret store, file
// stores and credential service, exposing them via the Wire struct for
// commands to use.
package app
