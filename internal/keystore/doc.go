// Package keystore persists protected credentials in the OS secret store
// (macOS Keychain, Secret Service on Linux, Windows Credential Manager).
//
// Each account holds one entry under a fixed service name; the value is the
// standard padded base64 encoding of the outermost encrypted blob. Writes
// overwrite any previous value.
package keystore
